package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/BojanFaletic/codex-eeprom-emulation/eeprom"
	"github.com/BojanFaletic/codex-eeprom-emulation/hexutil"
	"github.com/BojanFaletic/codex-eeprom-emulation/kv"
)

// newReplCmd builds the interactive shell. Unlike the other subcommands
// it keeps a single eeprom.Engine alive across the whole session instead
// of reopening one per invocation, so writes and compactions accumulate
// the way they would against real hardware.
func newReplCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Interactive shell over a single persistent engine instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			eng, err := openEngine(flags)
			if err != nil {
				return err
			}
			return runRepl(eng, cmd.OutOrStdout())
		},
	}
}

func runRepl(eng *eeprom.Engine, out io.Writer) error {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:      "eeprom> ",
		HistoryFile: "",
	})
	if err != nil {
		return fmt.Errorf("repl: %w", err)
	}
	defer rl.Close()

	fmt.Fprintln(out, "eepromctl repl — type 'help' for commands, 'quit' to exit")

	for {
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return nil
		case "help":
			printReplHelp(out)
		case "read":
			replRead(eng, out, fields[1:])
		case "write":
			replWrite(eng, out, fields[1:])
		case "dump":
			replDump(eng, out, fields[1:])
		case "boot":
			replBoot(eng, out, fields[1:])
		case "kv":
			replKV(eng, out, fields[1:])
		default:
			fmt.Fprintf(out, "unknown command %q, try 'help'\n", fields[0])
		}
	}
}

func printReplHelp(out io.Writer) {
	fmt.Fprintln(out, "commands:")
	fmt.Fprintln(out, "  read <addr> <len>")
	fmt.Fprintln(out, "  write <addr> <hex>")
	fmt.Fprintln(out, "  dump [offset] [len]")
	fmt.Fprintln(out, "  boot [inc]")
	fmt.Fprintln(out, "  kv get|set <name|baud|mode> [value]")
	fmt.Fprintln(out, "  quit")
}

func replRead(eng *eeprom.Engine, out io.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "usage: read <addr> <len>")
		return
	}
	addr, err := parseAddr(args[0])
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	n, err := strconv.ParseUint(args[1], 0, 32)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	buf := make([]byte, n)
	if err := eng.Read(addr, buf); err != nil {
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprintln(out, hex.EncodeToString(buf))
}

func replWrite(eng *eeprom.Engine, out io.Writer, args []string) {
	if len(args) != 2 {
		fmt.Fprintln(out, "usage: write <addr> <hex>")
		return
	}
	addr, err := parseAddr(args[0])
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	data, err := hex.DecodeString(args[1])
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	if err := eng.Write(addr, data); err != nil {
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprintf(out, "wrote %d bytes at 0x%X\n", len(data), addr)
}

func replDump(eng *eeprom.Engine, out io.Writer, args []string) {
	var offset uint32
	length := eng.Size()

	if len(args) > 0 {
		v, err := strconv.ParseUint(args[0], 0, 32)
		if err != nil {
			fmt.Fprintln(out, err)
			return
		}
		offset = uint32(v)
	}
	if len(args) > 1 {
		v, err := strconv.ParseUint(args[1], 0, 32)
		if err != nil {
			fmt.Fprintln(out, err)
			return
		}
		length = uint32(v)
	}

	buf := make([]byte, length)
	if err := eng.Read(offset, buf); err != nil {
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprint(out, hexutil.DumpString(offset, buf))
}

func replBoot(eng *eeprom.Engine, out io.Writer, args []string) {
	if len(args) == 1 && args[0] == "inc" {
		count, err := kv.IncBootCount(eng)
		if err != nil {
			fmt.Fprintln(out, err)
			return
		}
		fmt.Fprintf(out, "boot count: %d\n", count)
		return
	}
	count, err := kv.GetBootCount(eng)
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprintf(out, "boot count: %d\n", count)
}

func replKV(eng *eeprom.Engine, out io.Writer, args []string) {
	if len(args) < 2 {
		fmt.Fprintln(out, "usage: kv get|set <name|baud|mode> [value]")
		return
	}
	switch args[0] {
	case "get":
		switch args[1] {
		case "name":
			v, err := kv.GetName(eng)
			printOrErr(out, v, err)
		case "baud":
			v, err := kv.GetBaud(eng)
			printOrErr(out, v, err)
		case "mode":
			v, err := kv.GetMode(eng)
			printOrErr(out, v, err)
		default:
			fmt.Fprintf(out, "unknown key %q\n", args[1])
		}
	case "set":
		if len(args) != 3 {
			fmt.Fprintln(out, "usage: kv set <name|baud|mode> <value>")
			return
		}
		var err error
		switch args[1] {
		case "name":
			err = kv.SetName(eng, args[2])
		case "baud":
			var v uint64
			v, err = strconv.ParseUint(args[2], 0, 32)
			if err == nil {
				err = kv.SetBaud(eng, uint32(v))
			}
		case "mode":
			var v uint64
			v, err = strconv.ParseUint(args[2], 0, 8)
			if err == nil {
				err = kv.SetMode(eng, byte(v))
			}
		default:
			fmt.Fprintf(out, "unknown key %q\n", args[1])
			return
		}
		if err != nil {
			fmt.Fprintln(out, err)
			return
		}
		fmt.Fprintln(out, "ok")
	default:
		fmt.Fprintf(out, "unknown kv subcommand %q\n", args[0])
	}
}

func printOrErr(out io.Writer, v interface{}, err error) {
	if err != nil {
		fmt.Fprintln(out, err)
		return
	}
	fmt.Fprintln(out, v)
}
