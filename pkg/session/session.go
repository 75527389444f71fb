// Package session exposes gridkit's lifecycle hooks for embedding in a
// test runner. Typical use from TestMain:
//
//	func TestMain(m *testing.M) {
//		ctx := context.Background()
//		s, err := session.New(ctx)
//		if err != nil {
//			log.Fatal(err)
//		}
//		if err := s.Before(ctx); err != nil {
//			log.Fatal(err)
//		}
//		code := m.Run()
//		s.After(ctx)
//		os.Exit(code)
//	}
package session

import (
	"context"
	"os"

	"github.com/gridkit-dev/gridkit/internal/config"
	"github.com/gridkit-dev/gridkit/internal/lifecycle"
	"github.com/gridkit-dev/gridkit/internal/logger"
	"github.com/gridkit-dev/gridkit/pkg/engine"
)

// Session pairs the prepare and completion hooks around one test run.
type Session struct {
	eng  *engine.Engine
	ctrl *lifecycle.Controller
}

// New resolves configuration from the working directory and connects to
// the container engine.
func New(ctx context.Context) (*Session, error) {
	logger.Init(false)

	workDir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	cfg, err := config.NewLoader(workDir).Load()
	if err != nil {
		return nil, err
	}
	eng, err := engine.New(ctx)
	if err != nil {
		return nil, err
	}
	return &Session{eng: eng, ctrl: lifecycle.New(cfg, eng)}, nil
}

// Before runs the prepare sequence. A returned error is a policy-gated
// fatal failure and should abort the whole test session.
func (s *Session) Before(ctx context.Context) error {
	return s.ctrl.Prepare(ctx)
}

// After runs the completion sequence and releases the engine connection.
// Teardown is best-effort; the only error reported is from closing the
// engine client.
func (s *Session) After(ctx context.Context) error {
	_ = s.ctrl.Complete(ctx)
	return s.eng.Close()
}
