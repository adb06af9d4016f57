// tabview filters, sorts, pages, groups and exports tabular records read
// from Parquet or JSON lines files.
//
// Usage:
//
//	# Show the first page of users, sorted by name
//	tabview view users.parquet
//
//	# Active users from the north with sales above 5000, largest first
//	tabview view users.parquet -q "region:north sales>5000 isActive:true" --sort sales --dir desc
//
//	# Count users per region after filtering
//	tabview groups users.parquet --field region -q "sales>1000"
//
//	# Export the filtered set as CSV
//	tabview export users.parquet -q "region:north" -o north.csv
//
//	# Describe the columns of a Parquet file
//	tabview schema users.parquet
package main

import "os"

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
