package pathutil_test

import (
	"fmt"

	"todo-api/internal/handler/http/pathutil"
)

// ExampleNormalizePath shows that every todo ID collapses to one label value.
func ExampleNormalizePath() {
	fmt.Println(pathutil.NormalizePath("/todos/1"))
	fmt.Println(pathutil.NormalizePath("/todos/42"))
	fmt.Println(pathutil.NormalizePath("/todos/550e8400-e29b-41d4-a716-446655440000"))

	// Output:
	// /todos/{id}
	// /todos/{id}
	// /todos/{id}
}

// ExampleNormalizePath_static demonstrates that static endpoints remain unchanged.
func ExampleNormalizePath_static() {
	fmt.Println(pathutil.NormalizePath("/"))
	fmt.Println(pathutil.NormalizePath("/todos"))
	fmt.Println(pathutil.NormalizePath("/health"))
	fmt.Println(pathutil.NormalizePath("/metrics"))

	// Output:
	// /
	// /todos
	// /health
	// /metrics
}

// ExampleNormalizePath_queryParameters demonstrates that query parameters are stripped.
func ExampleNormalizePath_queryParameters() {
	fmt.Println(pathutil.NormalizePath("/todos/123?page=1"))
	fmt.Println(pathutil.NormalizePath("/health?format=json"))

	// Output:
	// /todos/{id}
	// /health
}
