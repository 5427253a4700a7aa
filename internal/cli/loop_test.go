package cli_test

import (
	"bytes"
	"context"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/store"
	"todo/internal/testutil"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

// session runs one loop over a real store in dir and returns its output.
type session struct {
	stdout, stderr string
	code           int
	status         store.LoadStatus
	store          *store.Store
}

func runSession(t *testing.T, dir, input string) session {
	t.Helper()

	cfg := config.New(dir)
	logger := testutil.DiscardLogger()
	st, status := store.Open(cfg.DataPath(), logger)
	loop := cli.NewLoop(commands.DefaultRegistry, cfg, st, logger)

	var stdout, stderr bytes.Buffer
	loop.Greet(&stdout, status)
	code := loop.Run(context.Background(), strings.NewReader(input), &stdout, &stderr)

	return session{
		stdout: stdout.String(),
		stderr: stderr.String(),
		code:   code,
		status: status,
		store:  st,
	}
}

// runFake runs one loop over a FakeService.
func runFake(t *testing.T, svc *testutil.FakeService, input string) (stdout, stderr string, code int) {
	t.Helper()

	cfg := &config.Config{Dir: t.TempDir(), DataFile: config.DataFile}
	loop := cli.NewLoop(commands.DefaultRegistry, cfg, svc, testutil.DiscardLogger())

	var outBuf, errBuf bytes.Buffer
	code = loop.Run(context.Background(), strings.NewReader(input), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func lines(input ...string) string {
	return strings.Join(input, "\n") + "\n"
}

func descriptions(entries []service.Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.Task.Description())
	}
	return out
}

func TestLoop_SessionTranscript(t *testing.T) {
	s := runSession(t, t.TempDir(), lines("2", "Buy milk", "1", "0"))

	assert.Equal(t, exitcode.Success, s.code)
	assert.Empty(t, s.stderr)
	testutil.Golden(t, "session", s.stdout)
}

func TestLoop_BuyMilkScenario(t *testing.T) {
	dir := t.TempDir()

	s := runSession(t, dir, lines(
		"1",
		"2", "Buy milk",
		"1",
		"3", "1",
		"1",
		"4", "1",
		"1",
		"0",
	))

	assert.Equal(t, store.Fresh, s.status)
	assert.Equal(t, exitcode.Success, s.code)
	assert.Empty(t, s.stderr)

	out := s.stdout
	assert.Contains(t, out, "no task file found, starting with an empty list\n")
	assert.Contains(t, out, "task added: Buy milk\n")
	assert.Contains(t, out, "Enter your choice: 1. [ ] Buy milk\n")
	assert.Contains(t, out, "task completed: Buy milk\n")
	assert.Contains(t, out, "Enter your choice: 1. [X] Buy milk\n")
	assert.Contains(t, out, "task removed: Buy milk\n")
	assert.Equal(t, 2, strings.Count(out, "Enter your choice: list is empty\n"))
	assert.Contains(t, out, "tasks saved to tasks.yaml\ngoodbye\n")

	again := runSession(t, dir, lines("0"))
	assert.Equal(t, store.Loaded, again.status)
	assert.Contains(t, again.stdout, "loaded 0 task(s) from tasks.yaml\n")
	assert.Equal(t, 0, again.store.Len())
}

func TestLoop_RemoveShiftsPositions(t *testing.T) {
	s := runSession(t, t.TempDir(), lines(
		"2", "A",
		"2", "B",
		"2", "C",
		"1",
		"4", "2",
		"1",
		"0",
	))

	assert.Equal(t, exitcode.Success, s.code)
	assert.Contains(t, s.stdout, "Enter your choice: 1. [ ] A\n2. [ ] B\n3. [ ] C\n")
	assert.Contains(t, s.stdout, "task removed: B\n")
	assert.Contains(t, s.stdout, "Enter your choice: 1. [ ] A\n2. [ ] C\n")
	assert.Equal(t, []string{"A", "C"}, descriptions(s.store.List()))
}

func TestLoop_PersistsAcrossSessions(t *testing.T) {
	dir := t.TempDir()

	first := runSession(t, dir, lines("2", "A", "2", "B", "2", "C", "3", "2", "4", "1", "0"))
	require.Equal(t, exitcode.Success, first.code)

	second := runSession(t, dir, lines("1", "0"))
	assert.Equal(t, store.Loaded, second.status)
	assert.Contains(t, second.stdout, "loaded 2 task(s) from tasks.yaml\n")
	assert.Contains(t, second.stdout, "Enter your choice: 1. [X] B\n2. [ ] C\n")
	assert.Equal(t, first.store.Tasks(), second.store.Tasks())
}

func TestLoop_CorruptFileStartsFresh(t *testing.T) {
	dir := t.TempDir()
	cfg := config.New(dir)
	require.NoError(t, os.WriteFile(cfg.DataPath(), []byte("{{{ not yaml"), 0o644))

	s := runSession(t, dir, lines("1", "0"))

	assert.Equal(t, store.Recovered, s.status)
	assert.Equal(t, exitcode.Success, s.code)
	assert.Contains(t, s.stdout, "could not read tasks.yaml, starting with an empty list\n")
	assert.Contains(t, s.stdout, "Enter your choice: list is empty\n")
}

func TestLoop_InvalidChoices(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, stderr, code := runFake(t, svc, lines("7", "abc", "", "-1", "0"))

	assert.Equal(t, exitcode.Success, code)
	expected := "error: invalid choice: 7\n" +
		"error: invalid input: abc\n" +
		"error: invalid input: \n" +
		"error: invalid choice: -1\n"
	assert.Equal(t, expected, stderr)
	assert.Equal(t, 5, strings.Count(stdout, "--- To-Do List Menu ---"))
	assert.Len(t, svc.SavedPaths, 1)
}

func TestLoop_AddInvalidDescriptionKeepsState(t *testing.T) {
	svc := testutil.NewFakeService("A")

	_, stderr, code := runFake(t, svc, lines("2", "   ", "0"))

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "error: task description cannot be empty\n", stderr)
	assert.Equal(t, 1, svc.Len())
}

func TestLoop_AddLongDescription(t *testing.T) {
	svc := testutil.NewFakeService()
	long := strings.Repeat("x", 70000)

	stdout, stderr, code := runFake(t, svc, lines("2", long, "1", "0"))

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "Enter your choice: 1. [ ] "+long+"\n")
	require.Len(t, svc.Saved, 1)
	assert.Equal(t, long, svc.Saved[0].Description())
}

func TestLoop_CompleteTwice(t *testing.T) {
	svc := testutil.NewFakeService("A")

	stdout, stderr, _ := runFake(t, svc, lines("3", "1", "3", "1", "0"))

	assert.Empty(t, stderr)
	assert.Contains(t, stdout, "task completed: A\n")
	assert.Contains(t, stdout, "task already complete: A\n")
	assert.True(t, svc.List()[0].Task.Done())
}

func TestLoop_PositionBounds(t *testing.T) {
	svc := testutil.NewFakeService("A", "B")

	_, stderr, _ := runFake(t, svc, lines("3", "0", "3", "3", "4", "0", "4", "3", "4", "x", "0"))

	expected := "error: invalid task number: 0\n" +
		"error: invalid task number: 3\n" +
		"error: invalid task number: 0\n" +
		"error: invalid task number: 3\n" +
		"error: invalid input: x\n"
	assert.Equal(t, expected, stderr)
	assert.Equal(t, 2, svc.Len())
}

func TestLoop_SaveFailureStillExits(t *testing.T) {
	svc := testutil.NewFakeService("A")
	svc.SaveErr = errors.New("permission denied")

	stdout, stderr, code := runFake(t, svc, lines("0"))

	assert.Equal(t, exitcode.Success, code)
	assert.Equal(t, "error: failed to save tasks: permission denied\n", stderr)
	assert.True(t, strings.HasSuffix(stdout, "goodbye\n"), stdout)
}

func TestLoop_EndOfInputSaves(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, stderr, code := runFake(t, svc, lines("2", "A"))

	assert.Equal(t, exitcode.Success, code)
	assert.Empty(t, stderr)
	assert.True(t, strings.HasSuffix(stdout, "Enter your choice: \ntasks saved to tasks.yaml\ngoodbye\n"), stdout)
	require.Len(t, svc.Saved, 1)
	assert.Equal(t, "A", svc.Saved[0].Description())
}

func TestLoop_EndOfInputInsideCommand(t *testing.T) {
	svc := testutil.NewFakeService("A")

	stdout, _, code := runFake(t, svc, "4\n")

	assert.Equal(t, exitcode.Success, code)
	assert.True(t, strings.HasSuffix(stdout, "Enter the number of the task to remove: \ntasks saved to tasks.yaml\ngoodbye\n"), stdout)
	assert.Equal(t, 1, svc.Len())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("device gone") }

func TestLoop_ReadErrorSavesAndFails(t *testing.T) {
	svc := testutil.NewFakeService("A")

	cfg := &config.Config{Dir: t.TempDir(), DataFile: config.DataFile}
	loop := cli.NewLoop(commands.DefaultRegistry, cfg, svc, testutil.DiscardLogger())

	var stdout, stderr bytes.Buffer
	code := loop.Run(context.Background(), failingReader{}, &stdout, &stderr)

	assert.Equal(t, exitcode.InputError, code)
	assert.Equal(t, "error: read input: device gone\n", stderr.String())
	assert.Len(t, svc.SavedPaths, 1)
}
