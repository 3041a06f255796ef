// Command esidump converts an EtherCAT slave information file and
// prints the resulting model as YAML.
//
//	esidump [-summary] [-v=1] <file.xml>
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/andaru/esi"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

var summary = flag.Bool("summary", false, "print only the vendor id and entity counts")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <file.xml>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	defer glog.Flush()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0), *summary, os.Stdout); err != nil {
		glog.Exitf("esidump: %v", err)
	}
}

func run(path string, summary bool, w io.Writer) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return errors.WithStack(err)
	}
	glog.V(1).Infof("READ %s (%d bytes)", path, len(b))

	info, err := esi.FromXMLString(string(b))
	if err != nil {
		return err
	}
	d := info.Description
	glog.V(1).Infof("CONVERTED vendor=%#x groups=%d devices=%d modules=%d",
		info.Vendor.ID, len(d.Groups), len(d.Devices), len(d.Modules))

	if summary {
		_, err = fmt.Fprintf(w, "vendor: %#x\ngroups: %d\ndevices: %d\nmodules: %d\n",
			info.Vendor.ID, len(d.Groups), len(d.Devices), len(d.Modules))
		return errors.WithStack(err)
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(info); err != nil {
		return errors.Wrap(err, "encode")
	}
	return errors.WithStack(enc.Close())
}
