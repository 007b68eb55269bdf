package runner

import (
	"github.com/projectdiscovery/gologger"

	"github.com/projectdiscovery/lansweep/pkg/version"
)

var banner = `
    __
   / /___ _____  ___ _      _____  ___  ____
  / / __ '/ __ \(_-<| | /| / / _ \/ _ \/ __ \
 /_/\__,_/_/ /_/___/|__/|__/\___/\___/ .___/
                                    /_/    ` + version.GetVersion() + `
`

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tprojectdiscovery.io\n\n")
}
