// Command uuidx generates, inspects and re-encodes UUIDs.
//
//	uuidx gen -v 7 -n 3
//	uuidx gen -v 5 --ns dns --name example.com
//	uuidx inspect 48b3477a-1340-11ed-a1c8-776f726c6421
//	uuidx fmt -f urn F47AC10B58CC4372A5670E02B2C3D479
package main

import (
	"log"
	"os"

	"github.com/Lzww0608/uuidx/internal/cli"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("uuidx: ")
	if err := cli.Run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal(err)
	}
}
