/*copter prints the parameters, variances, and power spectra of Lambda-CDM
cosmologies described by config files.*/
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
