package pathutil_test

import (
	"fmt"

	"propellus-site/internal/handler/http/pathutil"
)

func ExampleNormalizePath() {
	fmt.Println(pathutil.NormalizePath("/api/sections/vision"))
	fmt.Println(pathutil.NormalizePath("/api/sections/ota-features"))
	fmt.Println(pathutil.NormalizePath("/about"))
	fmt.Println(pathutil.NormalizePath("/wp-admin/setup.php"))
	// Output:
	// /api/sections/:name
	// /api/sections/:name
	// /about
	// /:unmatched
}
