package types

import "strings"

const (
	TypeString  = "string"
	TypeInteger = "integer"
	TypeNumber  = "number"
	TypeBoolean = "boolean"
	TypeObject  = "object"
	TypeArray   = "array"
)

// HTTPMethods lists the operation keys of an OpenAPI path item.
var HTTPMethods = []string{"get", "put", "post", "delete", "options", "head", "patch", "trace"}

// IsHTTPMethod reports whether a path item key is an operation key.
func IsHTTPMethod(key string) bool {
	key = strings.ToLower(key)
	for _, m := range HTTPMethods {
		if m == key {
			return true
		}
	}
	return false
}

// IsReadMethod reports whether the method is a read operation that gets a query string example.
func IsReadMethod(method string) bool {
	return strings.EqualFold(method, "get")
}

// IsWriteMethod reports whether the method carries a request body example.
func IsWriteMethod(method string) bool {
	switch strings.ToLower(method) {
	case "post", "put", "patch":
		return true
	}
	return false
}
