// Command jpsdemo loads a YAML map definition and prints the smoothed
// path between its "start" and "end" markers, along with an ASCII
// dump of the map overlaid with the path it found.
//
// Usage:
//
//	jpsdemo path/to/map.yaml
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/arcway/jpsgrid/mapconfig"
)

func main() {
	if len(os.Args) != 2 {
		log.Fatalf("usage: %s <map.yaml>", os.Args[0])
	}

	doc, err := mapconfig.LoadFile(os.Args[1])
	if err != nil {
		log.Fatalf("load map: %v", err)
	}

	start, ok := doc.Marker("start")
	if !ok {
		log.Fatal("map has no \"start\" marker")
	}
	end, ok := doc.Marker("end")
	if !ok {
		log.Fatal("map has no \"end\" marker")
	}

	m, err := doc.ToMap()
	if err != nil {
		log.Fatalf("build map: %v", err)
	}

	path, err := m.FindPathByGrid(start.X, start.Y, end.X, end.Y)
	if err != nil {
		log.Fatalf("find path: %v", err)
	}
	if len(path) == 0 {
		fmt.Println("no path found")
		return
	}

	fmt.Println("path:")
	for _, p := range path {
		fmt.Printf("  (%d,%d)\n", p.X, p.Y)
	}
	fmt.Println()
	fmt.Print(m.DumpConnected())
}
