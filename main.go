package main

import (
	"log"
	"time"

	"github.com/anoixa/group-gallery/cmd"
	"github.com/anoixa/group-gallery/config"
)

func init() {
	var cstZone = time.FixedZone("CST", 8*3600) // 东八
	time.Local = cstZone
}

func main() {
	log.Printf("group gallery %s (%s)", config.Version, config.CommitHash)
	cmd.Execute()
}
