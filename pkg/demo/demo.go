// Package demo holds one entry point per pattern scenario. Each scenario
// builds its own objects, fires the pattern once and discards everything.
package demo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/amirasaad/patterns/pkg/commands"
	"github.com/amirasaad/patterns/pkg/decorator"
	"github.com/amirasaad/patterns/pkg/handler"
	"github.com/amirasaad/patterns/pkg/mediator"
	"github.com/amirasaad/patterns/pkg/memento"
	"github.com/amirasaad/patterns/pkg/notification"
	"github.com/amirasaad/patterns/pkg/observer"
	"github.com/amirasaad/patterns/pkg/state"
)

// ErrUnknownScenario is returned by Run for names not in the registry
var ErrUnknownScenario = errors.New("unknown scenario")

// Env carries what every scenario writes to and reads from
type Env struct {
	Out    io.Writer
	Logger *slog.Logger

	Payload          string
	ChainLength      int
	NotificationKind string
	Statement        string
}

// Notification sends one notification through the channel picked by kind
func Notification(ctx context.Context, env Env) error {
	factory := notification.NewFactory(env.Out, env.Logger)
	service := notification.NewService(factory.Create(env.NotificationKind))
	return service.Send(ctx)
}

// Decorator runs the basic and the advance service through the decorator
func Decorator(_ context.Context, env Env) error {
	for _, svc := range []decorator.Service{decorator.BasicService{}, decorator.AdvanceService{}} {
		decorator.NewServiceDecorator(svc, env.Out, env.Logger).PerformOperation(env.Statement)
	}
	return nil
}

// Chain dispatches the payload once through a chain of ChainLength handlers
func Chain(ctx context.Context, env Env) error {
	head, err := handler.NewChainBuilder(handler.LoggingAction(env.Logger, env.Out), env.Logger).
		BuildN(env.ChainLength)
	if err != nil {
		return err
	}
	_, err = handler.NewChain(head, env.Logger).Dispatch(ctx, env.Payload)
	return err
}

// Dispatcher runs the same handlers by id, then again after re-routing
func Dispatcher(ctx context.Context, env Env) error {
	d := handler.NewDispatcher(env.Logger)
	action := handler.LoggingAction(env.Logger, env.Out)
	ids := []string{"validate", "enrich", "store"}
	for _, id := range ids {
		step := handler.StepFunc(func(ctx context.Context, req *handler.Request) error {
			return action(ctx, id, req)
		})
		if err := d.Register(id, step); err != nil {
			return err
		}
	}

	req := handler.NewRequest(env.Payload)
	if err := d.Route(ids...); err != nil {
		return err
	}
	if err := d.Dispatch(ctx, req); err != nil {
		return err
	}

	if err := d.Route("store", "validate"); err != nil {
		return err
	}
	fmt.Fprintln(env.Out, "Dispatcher: re-routed to", d.Routes()) //nolint:errcheck
	return d.Dispatch(ctx, req)
}

// Command runs an invoker with a simple start command and a complex finish command
func Command(ctx context.Context, env Env) error {
	invoker := commands.NewInvoker(env.Out, env.Logger)
	invoker.SetOnStart(commands.NewSimpleCommand("Say Hi!", env.Out))
	receiver := commands.NewReceiver(env.Out)
	invoker.SetOnFinish(commands.NewComplexCommand(receiver, "Send email", "Save report", env.Out))
	return invoker.DoSomethingImportant(ctx)
}

// Mediator triggers one event from each component
func Mediator(ctx context.Context, env Env) error {
	c1 := mediator.NewComponent1(env.Out)
	c2 := mediator.NewComponent2(env.Out)
	mediator.NewConcreteMediator(c1, c2, env.Logger)

	fmt.Fprintln(env.Out, "Client triggers operation A.") //nolint:errcheck
	if err := c1.DoA(ctx); err != nil {
		return err
	}
	fmt.Fprintln(env.Out, "Client triggers operation D.") //nolint:errcheck
	return c2.DoD(ctx)
}

// Memento takes three snapshots, then undoes twice
func Memento(_ context.Context, env Env) error {
	originator := memento.NewOriginator("Super-duper-super-puper-super.", env.Out, env.Logger)
	caretaker := memento.NewCaretaker(originator, env.Out, env.Logger)

	for range 3 {
		if err := caretaker.Backup(); err != nil {
			return err
		}
		originator.DoSomething()
	}
	caretaker.ShowHistory()

	fmt.Fprintln(env.Out, "Client: Now, let's rollback!") //nolint:errcheck
	if err := caretaker.Undo(); err != nil {
		return err
	}
	fmt.Fprintln(env.Out, "Client: Once more!") //nolint:errcheck
	return caretaker.Undo()
}

// Observer attaches two observers, changes state twice and detaches one in between
func Observer(ctx context.Context, env Env) error {
	subject := observer.NewStateSubject(env.Out, env.Logger)
	a := observer.NewConcreteObserverA(env.Out)
	b := observer.NewConcreteObserverB(env.Out)
	subject.Attach(a)
	subject.Attach(b)

	subject.SomeBusinessLogic(ctx)
	subject.Detach(b)
	subject.SomeBusinessLogic(ctx)
	return nil
}

// State moves a context from A to B and back
func State(ctx context.Context, env Env) error {
	c := state.NewContext(&state.ConcreteStateA{}, env.Out, env.Logger)
	c.Request1(ctx)
	c.Request2(ctx)
	return nil
}
