package demo

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type DemoTestSuite struct {
	suite.Suite
	out      *bytes.Buffer
	env      Env
	registry *Registry
}

func (s *DemoTestSuite) SetupTest() {
	s.out = &bytes.Buffer{}
	s.env = Env{
		Out:              s.out,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
		Payload:          "Test Data",
		ChainLength:      3,
		NotificationKind: "sms",
		Statement:        "Hi there",
	}
	s.registry = DefaultRegistry()
}

func (s *DemoTestSuite) lines() []string {
	return strings.Split(strings.TrimSpace(s.out.String()), "\n")
}

func (s *DemoTestSuite) TestAllScenariosRun() {
	for _, name := range s.registry.All() {
		s.out.Reset()
		s.Require().NoError(s.registry.Run(context.Background(), name, s.env), name)
		s.NotEmpty(s.out.String(), name)
	}
}

func (s *DemoTestSuite) TestAllOrder() {
	s.Equal([]string{
		"notification", "decorator", "chain", "dispatcher", "command",
		"mediator", "memento", "observer", "state",
	}, s.registry.All())
}

func (s *DemoTestSuite) TestUnknownScenario() {
	err := s.registry.Run(context.Background(), "singleton", s.env)
	s.Require().ErrorIs(err, ErrUnknownScenario)
	s.Empty(s.out.String())
}

func (s *DemoTestSuite) TestChain_ThreeHandlersInOrder() {
	s.Require().NoError(Chain(context.Background(), s.env))
	s.Equal([]string{
		"handler-1 handled: Test Data",
		"handler-2 handled: Test Data",
		"handler-3 handled: Test Data",
	}, s.lines())
}

func (s *DemoTestSuite) TestChain_InvalidLength() {
	s.env.ChainLength = 0
	s.Require().Error(Chain(context.Background(), s.env))
}

func (s *DemoTestSuite) TestNotification_Email() {
	s.env.NotificationKind = "email"
	s.Require().NoError(Notification(context.Background(), s.env))
	s.Equal([]string{"EMAIL Notification sent!!!"}, s.lines())
}

func (s *DemoTestSuite) TestDecorator_BothReturnAdvance() {
	s.Require().NoError(Decorator(context.Background(), s.env))
	s.Equal([]string{
		"This is logged using advance operation -> Hi there",
		"This is logged using advance operation -> Hi there",
	}, s.lines())
}

func (s *DemoTestSuite) TestDispatcher_ReRoutes() {
	s.Require().NoError(Dispatcher(context.Background(), s.env))
	s.Equal([]string{
		"validate handled: Test Data",
		"enrich handled: Test Data",
		"store handled: Test Data",
		"Dispatcher: re-routed to [store validate]",
		"store handled: Test Data",
		"validate handled: Test Data",
	}, s.lines())
}

func (s *DemoTestSuite) TestMediator() {
	s.Require().NoError(Mediator(context.Background(), s.env))
	s.Equal([]string{
		"Client triggers operation A.",
		"Component 1 does A.",
		"Component 2 does C.",
		"Client triggers operation D.",
		"Component 2 does D.",
		"Component 1 does B.",
	}, s.lines())
}

func (s *DemoTestSuite) TestNewRegistry_DuplicateKeepsOrder() {
	noop := func(context.Context, Env) error { return nil }
	r := NewRegistry(
		Scenario{Name: "a", Run: noop},
		Scenario{Name: "b", Run: noop},
		Scenario{Name: "a", Run: noop},
	)
	s.Equal([]string{"a", "b"}, r.All())
}

func (s *DemoTestSuite) TestNewRegistry_DuplicateFirstWins() {
	var ran []string
	runner := func(tag string) Runner {
		return func(context.Context, Env) error {
			ran = append(ran, tag)
			return nil
		}
	}
	r := NewRegistry(
		Scenario{Name: "a", Description: "first", Run: runner("first")},
		Scenario{Name: "a", Description: "second", Run: runner("second")},
	)

	got, ok := r.Get("a")
	s.Require().True(ok)
	s.Equal("first", got.Description)
	s.Require().NoError(r.Run(context.Background(), "a", s.env))
	s.Equal([]string{"first"}, ran)
}

func TestDemoTestSuite(t *testing.T) {
	suite.Run(t, new(DemoTestSuite))
}
