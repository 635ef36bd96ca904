package ecs

// System is one stage of the frame pipeline.
// Query and Singleton fields on the implementing struct declare the data the
// stage reads and writes; the Scheduler binds them on registration.
type System interface {
	Execute(frame *UpdateFrame)
}

// SystemFunc adapts a plain function into a System.
type SystemFunc func(frame *UpdateFrame)

// Execute calls f(frame).
func (f SystemFunc) Execute(frame *UpdateFrame) {
	f(frame)
}
