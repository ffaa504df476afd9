package main

import (
	"os"

	"github.com/MKhiriev/field-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	if err := newRootCmd(buildInfo).Execute(); err != nil {
		os.Exit(1)
	}
}
