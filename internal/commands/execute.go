package commands

import "fmt"

type Result struct {
	Message string
	// Warning is set when the command succeeded but could not be persisted.
	Warning string
	// Exit asks the caller to end the session.
	Exit bool
}

type Handlers struct {
	Bye      func() (Result, error)
	List     func() (Result, error)
	Help     func() (Result, error)
	Sort     func() (Result, error)
	Mark     func(IndexArgs) (Result, error)
	Unmark   func(IndexArgs) (Result, error)
	Delete   func(IndexArgs) (Result, error)
	Todo     func(TodoArgs) (Result, error)
	Deadline func(DeadlineArgs) (Result, error)
	Event    func(EventArgs) (Result, error)
	Find     func(FindArgs) (Result, error)
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeBye:
		if handlers.Bye == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Bye()
	case TypeList:
		if handlers.List == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.List()
	case TypeHelp:
		if handlers.Help == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Help()
	case TypeSort:
		if handlers.Sort == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Sort()
	case TypeMark:
		if handlers.Mark == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Mark(*cmd.Target)
	case TypeUnmark:
		if handlers.Unmark == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Unmark(*cmd.Target)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Delete(*cmd.Target)
	case TypeTodo:
		if handlers.Todo == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Todo(*cmd.Todo)
	case TypeDeadline:
		if handlers.Deadline == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Deadline(*cmd.Deadline)
	case TypeEvent:
		if handlers.Event == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Event(*cmd.Event)
	case TypeFind:
		if handlers.Find == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Find(*cmd.Find)
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: msgUnknownCommand}
	}
}
