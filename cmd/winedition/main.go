// Command winedition presents the Windows edition selection dialog used
// during OS deployment.
package main

import "github.com/osdeploy/winedition/internal/cli"

func main() {
	cli.Execute()
}
