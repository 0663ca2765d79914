package ports

type IO interface {
	Print(text string)
	Println(text string)
	Printf(format string, args ...any)
	PromptLine(label string) (string, error)
	PromptPassword(label string) (string, error)
	Progress(label string) ProgressTracker
}

// ProgressTracker is a ProgressObserver bound to one visible operation.
// Done must be called once the operation has finished.
type ProgressTracker interface {
	ProgressObserver
	Done()
}
