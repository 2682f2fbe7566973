// Package session implements the request/response contract that every
// front-end drives: one raw line in, one formatted response out.
package session

import (
	"log/slog"

	"github.com/starford/orion/internal/apperr"
	"github.com/starford/orion/internal/models"
	"github.com/starford/orion/internal/parser"
	"github.com/starford/orion/internal/tasklist"
	"github.com/starford/orion/internal/ui"
)

const unknownCommandMsg = "I don't know what that means. " +
	"Try: todo, deadline, event, list, find, mark, unmark, delete, bye"

// Store is the persistence the session needs.
type Store interface {
	Load() ([]models.Task, error)
	Save(tasks []models.Task) error
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) { s.logger = l }
}

// WithFormatter overrides the response framing.
func WithFormatter(f ui.Formatter) Option {
	return func(s *Session) { s.format = f }
}

// WithIdentity sets the duplicate-detection options.
func WithIdentity(opts models.IdentityOptions) Option {
	return func(s *Session) { s.identity = opts }
}

// Session processes one command at a time. It is not safe for concurrent
// use.
type Session struct {
	store    Store
	tasks    *tasklist.List
	format   ui.Formatter
	identity models.IdentityOptions
	logger   *slog.Logger

	exit    bool
	loadErr error
}

// New loads the saved tasks and returns a ready session. If loading fails
// the session starts with an empty list; the error is kept in LoadError.
func New(store Store, opts ...Option) *Session {
	s := &Session{
		store:  store,
		format: ui.DefaultFormatter(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	loaded, err := store.Load()
	if err != nil {
		s.logger.Warn("load failed, starting with an empty task list", slog.String("error", err.Error()))
		s.loadErr = err
		loaded = nil
	}
	s.tasks = tasklist.New(loaded...).WithIdentity(s.identity)
	return s
}

// LoadError returns the error from the initial load, if any.
func (s *Session) LoadError() error { return s.loadErr }

// IsExit reports whether bye has been processed.
func (s *Session) IsExit() bool { return s.exit }

// Tasks returns a snapshot of the current task list.
func (s *Session) Tasks() []models.Task { return s.tasks.All() }

// Welcome returns the greeting, followed by a notice when the saved tasks
// could not be loaded.
func (s *Session) Welcome() string {
	out := s.format.Welcome()
	if s.loadErr != nil {
		out += s.format.Error("Could not load saved tasks, starting with an empty list. " + s.loadErr.Error())
	}
	return out
}

// Respond processes one raw input line and returns the text to show.
func (s *Session) Respond(input string) string {
	cmd, err := parser.Parse(input)
	if err != nil {
		return s.fail(err)
	}
	s.logger.Debug("command received", slog.String("word", cmd.Word))

	if cmd.Word == parser.CmdBye {
		s.exit = true
		return s.format.Bye()
	}

	out, err := s.execute(cmd)
	if err != nil {
		return s.fail(err)
	}
	return out
}

func (s *Session) execute(cmd parser.Command) (string, error) {
	switch cmd.Word {
	case parser.CmdList:
		return s.format.List(s.tasks.All()), nil

	case parser.CmdFind:
		keyword, err := parser.ParseFindKeyword(cmd.Args)
		if err != nil {
			return "", err
		}
		return s.format.Found(s.tasks.Find(keyword)), nil

	case parser.CmdTodo, parser.CmdDeadline, parser.CmdEvent:
		return s.add(cmd)

	case parser.CmdMark, parser.CmdUnmark:
		idx, err := parser.ParseTaskIndex(cmd.Args, cmd.Word, s.tasks.Len())
		if err != nil {
			return "", err
		}
		done := cmd.Word == parser.CmdMark
		var task models.Task
		if done {
			task = s.tasks.MarkDone(idx)
		} else {
			task = s.tasks.MarkUndone(idx)
		}
		if err := s.save(); err != nil {
			return "", err
		}
		return s.format.Marked(task, done), nil

	case parser.CmdDelete:
		idx, err := parser.ParseTaskIndex(cmd.Args, cmd.Word, s.tasks.Len())
		if err != nil {
			return "", err
		}
		removed := s.tasks.Remove(idx)
		if err := s.save(); err != nil {
			return "", err
		}
		return s.format.Deleted(removed, s.tasks.Len()), nil

	default:
		return "", apperr.New(apperr.ErrUnknownCommand, unknownCommandMsg)
	}
}

func (s *Session) add(cmd parser.Command) (string, error) {
	task, err := parser.ParseTask(cmd.Word, cmd.Args)
	if err != nil {
		return "", err
	}
	if idx := s.tasks.IndexOfDuplicate(task); idx != tasklist.NotFound {
		s.logger.Debug("duplicate task rejected", slog.Int("existing", idx+1))
		return s.format.Duplicate(s.tasks.Get(idx), idx), nil
	}
	s.tasks.Add(task)
	if err := s.save(); err != nil {
		return "", err
	}
	return s.format.Added(task, s.tasks.Len()), nil
}

func (s *Session) save() error {
	return s.store.Save(s.tasks.All())
}

func (s *Session) fail(err error) string {
	if apperr.IsUserError(err) {
		s.logger.Debug("command rejected", slog.String("error", err.Error()))
	} else {
		s.logger.Error("command failed", slog.String("error", err.Error()))
	}
	return s.format.Error(err.Error())
}
