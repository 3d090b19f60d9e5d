/*
flag Package set up cli flags shared across services

Usage:

	Flags listed in this package are shared across boundaries and service-agnostic.
	Call Parse once from main; tests never parse flags and keep the defaults.
	For service dependent flags please define in their respective package
*/

package flag

import (
	"flag"
)

const (
	APIServer = "api_server"
	Seeder    = "seeder"
)

var (
	IsDevelopment  = flag.Bool("dev", true, "set to true if the current run is for development. default value is true")
	ServiceName    = flag.String("service", APIServer, "'api_server' or 'seeder'")
	AppSettingPath = flag.String("app_setting_path", "cmd/choird/app_setting.yaml", "path to the yaml app setting")
	ByPassAuth     = flag.Bool("no_auth", false, "serve write routes without a signed in user, for local debugging only")
)

// Parse parses command line flags. It is safe to call multiple times.
func Parse() {
	if !flag.Parsed() {
		flag.Parse()
	}
}
