package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"gopkg.in/urfave/cli.v2"

	"github.com/jmalego/atsim-go"
)

func main() {
	app := &cli.App{
		Name:    "avrsim",
		Usage:   "run or disassemble AVR program binaries",
		Version: "v0.0.1",
		Commands: []*cli.Command{
			{
				Name:      "run",
				Usage:     "load a binary and run it to halt",
				ArgsUsage: "<file.bin>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "flash-words", Value: avr.DeviceATtiny85.FlashWords, Usage: "program memory size in words"},
					&cli.IntFlag{Name: "sram-bytes", Value: avr.DeviceATtiny85.SRAMBytes, Usage: "general SRAM size in bytes"},
					&cli.IntFlag{Name: "max-steps", Value: 0, Usage: "stop after this many instructions (0 = unbounded)"},
					&cli.BoolFlag{Name: "dump", Usage: "print register state after halting"},
				},
				Action: runCommand,
			},
			{
				Name:      "disasm",
				Usage:     "disassemble a binary to AVR assembly text",
				ArgsUsage: "<file.bin>",
				Flags: []cli.Flag{
					&cli.IntFlag{Name: "flash-words", Value: avr.DeviceATtiny85.FlashWords, Usage: "program memory size in words"},
				},
				Action: disasmCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatalf("[avrsim] %v", err)
	}
}

func runCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		cli.ShowSubcommandHelp(c)
		return cli.Exit("missing <file.bin>", 1)
	}

	cfg := avr.DeviceConfig{
		FlashWords: c.Int("flash-words"),
		SRAMBytes:  c.Int("sram-bytes"),
		Name:       "custom",
	}
	m := avr.NewMachine(cfg)

	f, err := os.Open(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer f.Close()

	if err := avr.Load(m, f); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	ctx := context.Background()
	var runErr error
	if maxSteps := c.Int("max-steps"); maxSteps > 0 {
		_, runErr = m.RunFor(ctx, maxSteps)
	} else {
		runErr = m.Run(ctx)
	}
	if runErr != nil && runErr != avr.ErrHalted {
		return cli.Exit(runErr.Error(), 1)
	}

	if c.Bool("dump") {
		dumpRegisters(m)
	}
	return nil
}

func disasmCommand(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		cli.ShowSubcommandHelp(c)
		return cli.Exit("missing <file.bin>", 1)
	}

	cfg := avr.DeviceConfig{
		FlashWords: c.Int("flash-words"),
		SRAMBytes:  avr.DeviceATtiny85.SRAMBytes,
		Name:       "custom",
	}
	m := avr.NewMachine(cfg)

	f, err := os.Open(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	defer f.Close()

	if err := avr.Load(m, f); err != nil {
		return cli.Exit(err.Error(), 1)
	}

	for pc := uint16(0); int(pc) < cfg.FlashWords; {
		mnemonic, operands, words, err := avr.Disassemble(m, pc)
		if err != nil {
			fmt.Printf("%04x: <%v>\n", pc, err)
			pc++
			continue
		}
		fmt.Printf("%04x: %s %s\n", pc, mnemonic, operands)
		pc += uint16(words)
	}
	return nil
}

func dumpRegisters(m *avr.Machine) {
	fmt.Printf("PC=%04x SP=%04x\n", m.GetPC(), m.SP)
	for i := 0; i < 32; i += 8 {
		fmt.Printf("R%-2d: % 02x % 02x % 02x % 02x % 02x % 02x % 02x % 02x\n",
			i, m.R[i], m.R[i+1], m.R[i+2], m.R[i+3], m.R[i+4], m.R[i+5], m.R[i+6], m.R[i+7])
	}
	fmt.Printf("SREG: I=%v T=%v H=%v S=%v V=%v N=%v Z=%v C=%v\n",
		m.GetStatusFlag(avr.FlagI), m.GetStatusFlag(avr.FlagT), m.GetStatusFlag(avr.FlagH),
		m.GetStatusFlag(avr.FlagS), m.GetStatusFlag(avr.FlagV), m.GetStatusFlag(avr.FlagN),
		m.GetStatusFlag(avr.FlagZ), m.GetStatusFlag(avr.FlagC))
}
