package commands

import (
	"context"
	"testing"

	"github.com/drcDRt/tmc-cli/internal/adapters/termio/termiotest"
	"github.com/drcDRt/tmc-cli/internal/dispatch"
	"github.com/drcDRt/tmc-cli/internal/domain"
	"github.com/drcDRt/tmc-cli/internal/ports"
	"github.com/drcDRt/tmc-cli/internal/ports/mocks"
	"github.com/stretchr/testify/mock"
)

var (
	accountA = domain.NewAccount("http://a.test", "alice", "pw-a")
	accountB = domain.NewAccount("http://b.test", "bob", "pw-b")
)

type harness struct {
	t         *testing.T
	io        *termiotest.Scripted
	gw        *mocks.MockGateway
	gateway   ports.Gateway
	accounts  *mocks.MockAccountStore
	workspace *mocks.MockWorkspaceStore
	info      *domain.CourseInfo
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	gw := mocks.NewMockGateway(t)
	return &harness{
		t:         t,
		io:        termiotest.NewScripted(),
		gw:        gw,
		gateway:   gw,
		accounts:  mocks.NewMockAccountStore(t),
		workspace: mocks.NewMockWorkspaceStore(t),
	}
}

// withoutGateway runs the dispatcher with no backend at all.
func (h *harness) withoutGateway() *harness {
	h.gateway = nil
	return h
}

func (h *harness) withWorkspace(info *domain.CourseInfo) *harness {
	h.info = info
	return h
}

func (h *harness) online() *harness {
	h.gw.EXPECT().HasConnection(mock.Anything).Return(true)
	return h
}

func (h *harness) withAccounts(accounts ...domain.Account) *harness {
	h.accounts.EXPECT().Load(mock.Anything).Return(domain.NewAccountList(accounts...), nil)
	return h
}

func (h *harness) run(args ...string) int {
	h.t.Helper()

	h.workspace.EXPECT().Load(mock.Anything).Return(h.info, nil).Maybe()

	d := dispatch.New(dispatch.Deps{
		IO:        h.io,
		Gateway:   h.gateway,
		Accounts:  h.accounts,
		Workspace: h.workspace,
	})
	d.Register(NewLogin(), NewLogout(), NewAccounts(), NewCourses(), NewListExercises(), NewVersion("test"))

	return d.Run(context.Background(), args)
}
