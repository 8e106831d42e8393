// Command zfsbootcfg edits a pool's bootenv label nvlist, mirroring
// sbin/zfsbootcfg(8)'s -k/-p/-t/-v/-z flag shape. Since a real zpool
// label's four-copy, checksummed layout and the zpool ioctl surface
// that maintains it are out of scope here, -f/--file points at a plain
// file region instead of opening a pool by name.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"

	"github.com/tsoome-bootenv/zfsbootenv/bootenv"
	"github.com/tsoome-bootenv/zfsbootenv/labelio"
	"github.com/tsoome-bootenv/zfsbootenv/nvlist"
)

func main() {
	var (
		key    = pflag.StringP("key", "k", "", "pair name to set or remove")
		print_ = pflag.BoolP("print", "p", false, "print the bootenv nvlist")
		typ    = pflag.StringP("type", "t", "DATA_TYPE_STRING", "pair type (only DATA_TYPE_STRING is settable)")
		value  = pflag.StringP("value", "v", "", "pair value, or boot device name")
		name   = pflag.StringP("zpool", "z", "", "pool name; accepted and ignored, --file selects the label")
		file   = pflag.StringP("file", "f", "", "path to the backing label region file")
		offset = pflag.Int64("offset", 0, "byte offset of the label region within --file")
		size   = pflag.Int("size", 1<<17, "size in bytes of the label region")
	)
	pflag.Parse()

	if pflag.NArg() == 1 {
		*value = pflag.Arg(0)
	} else if pflag.NArg() > 1 {
		fmt.Fprintln(os.Stderr, "usage: zfsbootcfg <boot.config(5) options>")
		os.Exit(1)
	}

	if *file == "" {
		fmt.Fprintln(os.Stderr, "zfsbootcfg: --file is required")
		os.Exit(1)
	}

	if err := run(*file, *offset, *size, *key, *typ, *value, *name, *print_); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(file string, offset int64, size int, key, typ, value, name string, print bool) error {
	backend, err := labelio.NewFileBackend(file, offset, size)
	if err != nil {
		return err
	}
	defer backend.Close()

	region, err := backend.Read()
	if err != nil {
		return err
	}

	l, err := loadOrCreate(region)
	if err != nil {
		return err
	}

	switch {
	case key != "" || value != "":
		if key == "" || key == "command" {
			err = bootenv.SetBootDevice(l, value)
		} else if typ == "DATA_TYPE_STRING" {
			err = bootenv.SetPair(l, key, value)
		} else {
			return fmt.Errorf("unsupported type %q", typ)
		}
		if err != nil {
			return err
		}
		if err := writeBack(backend, l); err != nil {
			return err
		}
		fmt.Println("zfs bootenv is successfully written")

	case !print:
		dev, err := bootenv.BootDevice(l)
		if err == nil {
			fmt.Printf("zfs:%s:\n", dev)
		} else if err != nvlist.ErrNotFound {
			return err
		}
	}

	if print {
		return nvlist.Print(os.Stdout, l, 0)
	}
	return nil
}

func loadOrCreate(region []byte) (*nvlist.List, error) {
	l, err := bootenv.Open(region)
	if err == nil {
		return l, nil
	}
	return bootenv.New(), nil
}

func writeBack(backend *labelio.FileBackend, l *nvlist.List) error {
	wire, err := l.Export()
	if err != nil {
		return err
	}
	return backend.Write(wire)
}
