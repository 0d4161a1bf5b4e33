package shell

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/notepad/pkg/core"
)

// Kind says what a parsed line asks for.
type Kind int

const (
	KindEmpty Kind = iota
	KindMessage
	KindList
	KindShow
	KindDiff
	KindHelp
	KindQuit
)

// Command is a parsed shell line.
type Command struct {
	Kind Kind
	Msg  core.Message
}

// ErrUnknownCommand is returned for lines that match no command.
var ErrUnknownCommand = errors.New("unknown command")

// Parse turns a line into a command. view resolves "#n" list positions.
func Parse(line string, view core.View) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{Kind: KindEmpty}, nil
	}

	word, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	switch strings.ToLower(word) {
	case "new":
		return message(core.CreateNote{}), nil
	case "select", "open":
		id, err := resolveNote(rest, view)
		if err != nil {
			return Command{}, err
		}
		return message(core.SelectNote{ID: id}), nil
	case "title":
		return message(core.UpdateTitle{Title: rest}), nil
	case "content", "body":
		return message(core.UpdateContent{Content: rest}), nil
	case "color", "colour":
		c, err := core.ParseColor(rest)
		if err != nil {
			return Command{}, err
		}
		return message(core.ChangeColor{Color: c}), nil
	case "import":
		return message(core.ImportNotes{}), nil
	case "export":
		return message(core.ExportNotes{}), nil
	case "dismiss":
		return message(core.ClearError{}), nil
	case "list", "ls":
		return Command{Kind: KindList}, nil
	case "show":
		return Command{Kind: KindShow}, nil
	case "diff":
		return Command{Kind: KindDiff}, nil
	case "help", "?":
		return Command{Kind: KindHelp}, nil
	case "quit", "exit", "q":
		return Command{Kind: KindQuit}, nil
	}
	return Command{}, fmt.Errorf("%w: %s", ErrUnknownCommand, word)
}

func message(msg core.Message) Command {
	return Command{Kind: KindMessage, Msg: msg}
}

// resolveNote accepts either "#n", a 1-based position in the note list, or
// a raw identifier, which is passed through unvalidated.
func resolveNote(arg string, view core.View) (string, error) {
	if arg == "" {
		return "", errors.New("select needs a note id or #position")
	}
	if !strings.HasPrefix(arg, "#") {
		return arg, nil
	}
	n, err := strconv.Atoi(arg[1:])
	if err != nil || n < 1 || n > len(view.List) {
		return "", fmt.Errorf("no note at position %s", arg)
	}
	return view.List[n-1].ID, nil
}

const notesHelp = `commands:
  new                 create a note and select it
  list                show all notes
  select <id|#n>      select a note by id or list position
  title <text>        set the selected note's title
  content <text>      set the selected note's content
  color <name>        red, green, blue, yellow or orange
  show                show the editor pane
  import              replace all notes with the note file
  export              write all notes to the note file
  diff                preview what import would change
  dismiss             clear the error banner
  quit                leave
`
