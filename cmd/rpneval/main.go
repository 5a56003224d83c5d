// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/ezrec/unwind/eval"
	"github.com/ezrec/unwind/memory"
)

// constants collects repeated -c NAME=VALUE flags.
type constants []string

func (c *constants) String() string {
	return strings.Join(*c, ",")
}

func (c *constants) Set(value string) error {
	*c = append(*c, value)
	return nil
}

func main() {
	var consts constants
	var image string
	var base uint64
	var order string
	var width int
	var input string

	flag.Var(&consts, "c", "Constant binding NAME=VALUE (repeatable)")
	flag.StringVar(&image, "m", "", "Memory image file for dereferences")
	flag.Uint64Var(&base, "b", 0, "Base address of the memory image")
	flag.StringVar(&order, "e", "native", "Byte order: native, little, or big")
	flag.IntVar(&width, "w", 8, "Register width in bytes (1, 2, 4, or 8)")
	flag.StringVar(&input, "i", "-", "Assignment batch input ('-' for stdin)")

	flag.Parse()

	if flag.NArg() != 0 {
		log.Fatalf("%v: Unknown arguments: %v", os.Args[0], flag.Args())
	}

	var byteOrder memory.ByteOrder
	switch order {
	case "native":
		byteOrder = memory.BO_NATIVE
	case "little":
		byteOrder = memory.BO_LITTLE_ENDIAN
	case "big":
		byteOrder = memory.BO_BIG_ENDIAN
	default:
		log.Fatalf("%v: Unknown byte order", order)
	}

	var region *memory.Region
	if len(image) != 0 {
		data, err := os.ReadFile(image)
		if err != nil {
			log.Fatalf("%v: %v", image, err)
		}
		region = memory.NewRegion(base, data)
	}

	var batch []byte
	var err error
	if input == "-" {
		batch, err = io.ReadAll(os.Stdin)
	} else {
		batch, err = os.ReadFile(input)
	}
	if err != nil {
		log.Fatalf("%v: %v", input, err)
	}

	switch width {
	case 1:
		run[uint8](string(batch), consts, region, byteOrder)
	case 2:
		run[uint16](string(batch), consts, region, byteOrder)
	case 4:
		run[uint32](string(batch), consts, region, byteOrder)
	case 8:
		run[uint64](string(batch), consts, region, byteOrder)
	default:
		log.Fatalf("%v: Unknown register width", width)
	}
}

// run processes the batch at one register width and prints the resulting
// variables, sorted by name.
func run[T memory.Value](batch string, consts []string, region *memory.Region, order memory.ByteOrder) {
	ev := eval.NewEvaluator[T]()
	ev.Memory = region
	ev.Order = order

	for _, binding := range consts {
		name, value, ok := strings.Cut(binding, "=")
		if !ok {
			log.Fatalf("%v: Not a NAME=VALUE binding", binding)
		}
		parsed, err := strconv.ParseUint(value, 0, memory.Width[T]()*8)
		if err != nil {
			log.Fatalf("%v: %v", binding, err)
		}
		ev.Constants[eval.Constant(name)] = T(parsed)
	}

	changed, err := ev.Process(batch)
	if err != nil {
		log.Fatal(err)
	}

	names := make([]string, 0, len(changed))
	for variable := range changed {
		names = append(names, string(variable))
	}
	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%s = %#x\n", name, uint64(ev.Variables[eval.Variable(name)]))
	}
}
