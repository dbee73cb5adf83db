package utm_test

import (
	"fmt"

	"github.com/geomys/utm"
)

func ExampleFromGeodetic() {
	pt, _ := utm.FromGeodetic(utm.NewGeodeticPoint(51.178861, -1.826412), utm.WGS84())
	fmt.Println(pt)
	// Output: 30 N 582032 5670370
}

func ExampleToGeodetic() {
	pt, _ := utm.NewProjectedPoint(30, utm.HemisphereNorth, 582031.96, 5670369.80, utm.WGS84())
	geo, _ := utm.ToGeodetic(pt)
	fmt.Printf("%.4f, %.4f\n", geo.Lat(), geo.Lng())
	// Output: 51.1789, -1.8264
}

func ExampleFormatMGRS() {
	pt, _ := utm.FromGeodetic(utm.NewGeodeticPoint(0, 0), utm.WGS84())
	ref, _ := utm.FormatMGRS(pt, 3)
	fmt.Println(ref)
	// Output: 31NAA660000
}
