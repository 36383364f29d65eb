// Package editor builds the command used to open a note in an external
// editor.
package editor

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Launch is the command necessary to start an editor along with whether the
// caller should wait for the process before reading the file back.
type Launch struct {
	Cmd  *exec.Cmd
	Wait bool
}

type editorCommand struct {
	command string
	args    []string
	wait    bool
	silence bool
}

func (cmd editorCommand) launch() *Launch {
	c := exec.Command(cmd.command, cmd.args...)
	if cmd.silence {
		c.Stdout = io.Discard
		c.Stderr = io.Discard
	}
	return &Launch{Cmd: c, Wait: cmd.wait}
}

// Resolve picks the editor name: the configured one, then $VISUAL, then
// $EDITOR, then vi.
func Resolve(configured string) string {
	if editor := strings.TrimSpace(configured); editor != "" {
		return editor
	}
	for _, env := range []string{"VISUAL", "EDITOR"} {
		if editor := strings.TrimSpace(os.Getenv(env)); editor != "" {
			return editor
		}
	}
	return "vi"
}

// ForPath prepares an editor command for path without starting it. extra
// holds additional arguments; for the "custom" editor its first field is
// the executable.
func ForPath(editor, extra, path string) (*Launch, error) {
	cmd, err := buildEditorCommand(Resolve(editor), strings.Fields(extra), path)
	if err != nil {
		return nil, err
	}
	return cmd.launch(), nil
}

func buildEditorCommand(editor string, extra []string, path string) (*editorCommand, error) {
	switch editor {
	case "nvim", "vim", "vi", "nano", "hx", "emacs":
		return &editorCommand{command: editor, args: append(extra, path), wait: true}, nil
	case "vscode", "code":
		return buildVSCodeCommand(path)
	case "custom":
		if len(extra) == 0 {
			return nil, fmt.Errorf("custom editor requires editor_args")
		}
		return &editorCommand{command: extra[0], args: append(extra[1:], path), wait: true}, nil
	case "":
		return nil, fmt.Errorf("editor not configured")
	}

	// $EDITOR may carry its own flags, e.g. "code --wait".
	fields := strings.Fields(editor)
	args := append(fields[1:], extra...)
	return &editorCommand{command: fields[0], args: append(args, path), wait: true}, nil
}

func buildVSCodeCommand(path string) (*editorCommand, error) {
	switch runtime.GOOS {
	case "darwin":
		return &editorCommand{command: "open", args: []string{"-W", "-n", "-b", "com.microsoft.VSCode", "--args", "--wait", path}, wait: true, silence: true}, nil
	case "linux":
		return &editorCommand{command: "code", args: []string{"--wait", path}, wait: true, silence: true}, nil
	case "windows":
		return &editorCommand{command: "cmd", args: []string{"/c", "code", "--wait", path}, wait: true, silence: true}, nil
	default:
		return nil, fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// TempFile writes content to a new temporary markdown file and returns its
// path. ReadBack reads and removes it.
func TempFile(content string) (string, error) {
	f, err := os.CreateTemp("", "dn-*.md")
	if err != nil {
		return "", fmt.Errorf("failed to create temporary file: %w", err)
	}

	if _, err := f.WriteString(content); err != nil {
		f.Close()
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to write temporary file: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(f.Name())
		return "", err
	}
	return f.Name(), nil
}

func ReadBack(path string) (string, error) {
	defer os.Remove(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read edited note: %w", err)
	}
	return string(data), nil
}

// EditFile hands content to run in a temporary file and returns the file
// content afterwards. run starts the editor and blocks until it exits.
func EditFile(content string, run func(path string) error) (string, error) {
	path, err := TempFile(content)
	if err != nil {
		return "", err
	}

	if err := run(path); err != nil {
		os.Remove(path)
		return "", err
	}
	return ReadBack(path)
}

// Run starts l on the terminal and waits for it when the editor blocks.
func Run(l *Launch) error {
	if l.Cmd.Stdin == nil {
		l.Cmd.Stdin = os.Stdin
	}
	if l.Cmd.Stdout == nil {
		l.Cmd.Stdout = os.Stdout
	}
	if l.Cmd.Stderr == nil {
		l.Cmd.Stderr = os.Stderr
	}

	if l.Wait {
		return l.Cmd.Run()
	}
	return l.Cmd.Start()
}
