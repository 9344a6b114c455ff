package flagx

import (
	"flag"
	"os"
)

// JsonConfigFlags extracts the optional JSON config file path from the
// command line (-c or -config). It parses a filtered copy of os.Args so the
// rest of the flag namespace stays untouched.
func JsonConfigFlags() string {
	args := FilterArgs(os.Args[1:], []string{"-c", "-config"})

	fs := flag.NewFlagSet("jsonconfig", flag.ContinueOnError)
	short := fs.String("c", "", "path to JSON config file")
	long := fs.String("config", "", "path to JSON config file")

	if err := fs.Parse(args); err != nil {
		return ""
	}

	if *long != "" {
		return *long
	}
	return *short
}
