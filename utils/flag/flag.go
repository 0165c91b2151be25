package flag

import "flag"

var (
	// ServiceName tags log lines and traces with the binary that emitted
	// them.
	ServiceName = flag.String("service", "careernet_server", "name of the service")
)

func ParseFlags() {
	flag.Parse()
}
