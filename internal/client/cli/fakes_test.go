package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dmitrijs2005/studentdir/internal/client/client"
	"github.com/dmitrijs2005/studentdir/internal/client/directory"
	"github.com/dmitrijs2005/studentdir/internal/client/models"
	"github.com/dmitrijs2005/studentdir/internal/logging"
)

// fakeSvc is an in-memory StudentService that records calls in order.
type fakeSvc struct {
	rows  []models.Student
	calls []string
	next  int

	listErr   error
	createErr error
	updateErr error
	deleteErr error

	lastCreate   models.Student
	lastUpdate   models.Student
	lastUpdatePW string
	lastDeletePW string
}

func (f *fakeSvc) List(context.Context) ([]models.Student, error) {
	f.calls = append(f.calls, "list")
	if f.listErr != nil {
		return nil, f.listErr
	}
	out := make([]models.Student, len(f.rows))
	copy(out, f.rows)
	return out, nil
}

func (f *fakeSvc) Create(_ context.Context, s models.Student) (models.Student, error) {
	f.calls = append(f.calls, "create")
	f.lastCreate = s
	if f.createErr != nil {
		return models.Student{}, f.createErr
	}
	f.next++
	s.ID = fmt.Sprintf("new-%d", f.next)
	f.rows = append(f.rows, s)
	return s, nil
}

func (f *fakeSvc) Update(_ context.Context, id string, s models.Student, pw string) (models.Student, error) {
	f.calls = append(f.calls, "update "+id)
	f.lastUpdate, f.lastUpdatePW = s, pw
	if f.updateErr != nil {
		return models.Student{}, f.updateErr
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			s.ID = id
			f.rows[i] = s
			return s, nil
		}
	}
	return models.Student{}, client.ErrNotFound
}

func (f *fakeSvc) Delete(_ context.Context, id string, pw string) error {
	f.calls = append(f.calls, "delete "+id)
	f.lastDeletePW = pw
	if f.deleteErr != nil {
		return f.deleteErr
	}
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return client.ErrNotFound
}

func seedRows() []models.Student {
	return []models.Student{
		{ID: "a1", Name: "Ann", RollNumber: "R1", ContactNumber: "111", BloodGroup: "A+", Email: "ann@x.io", Address: "1 Elm St"},
		{ID: "b2", Name: "Bob", RollNumber: "R2", ContactNumber: "222", BloodGroup: "B-", Email: "bob@x.io", Address: "2 Oak St"},
	}
}

// newTestApp builds an App over svc that reads the given lines and writes
// into the returned buffer. The directory is loaded before returning.
func newTestApp(t *testing.T, svc *fakeSvc, lines ...string) (*App, *bytes.Buffer) {
	t.Helper()

	logger := logging.Discard()
	out := &bytes.Buffer{}
	input := ""
	if len(lines) > 0 {
		input = strings.Join(lines, "\n") + "\n"
	}
	a := &App{
		dir:    directory.New(svc, logger),
		log:    logger,
		reader: bufio.NewReader(strings.NewReader(input)),
		out:    out,
	}
	_ = a.dir.Load(context.Background())
	svc.calls = nil
	return a, out
}

// pipedPasswords makes GetPassword read from the input stream.
func pipedPasswords(t *testing.T) {
	t.Helper()
	old := isTerminal
	isTerminal = func(int) bool { return false }
	t.Cleanup(func() { isTerminal = old })
}

// terminalPasswords makes GetPassword return the given passwords in turn.
// The returned slices are kept so tests can check they were wiped.
func terminalPasswords(t *testing.T, passwords ...string) *[][]byte {
	t.Helper()
	oldTerm, oldRead := isTerminal, readPassword
	t.Cleanup(func() { isTerminal, readPassword = oldTerm, oldRead })

	handed := &[][]byte{}
	isTerminal = func(int) bool { return true }
	readPassword = func(int) ([]byte, error) {
		if len(passwords) == 0 {
			return nil, fmt.Errorf("no more passwords")
		}
		pw := []byte(passwords[0])
		passwords = passwords[1:]
		*handed = append(*handed, pw)
		return pw, nil
	}
	return handed
}

// blanks returns n empty input lines.
func blanks(n int) []string {
	return make([]string, n)
}
