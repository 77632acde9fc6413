// CACourses builds a queryable database of California course-transfer
// articulation agreements from ASSIST.org data.
package main

import "github.com/akash-pandit/CACourses/cmd"

func main() {
	cmd.Execute()
}
