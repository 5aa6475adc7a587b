package dto

// Response is the storefront API envelope. Payloads are keyed by entity name
// ("product", "orders", ...) next to the success flag, so the shape is a map
// rather than a fixed struct.
type Response map[string]any

// NewEntityResponse wraps a single entity: {success: true, <key>: entity}
func NewEntityResponse(key string, entity any) Response {
	return Response{
		"success": true,
		key:       entity,
	}
}

// NewListResponse wraps a collection with its count:
// {success: true, <key>: items, total: n}
func NewListResponse(key string, items any, total int) Response {
	return Response{
		"success": true,
		key:       items,
		"total":   total,
	}
}

// NewDeletedResponse wraps a deleted entity with the confirmation message
func NewDeletedResponse(key string, entity any, message string) Response {
	return Response{
		"success": true,
		key:       entity,
		"message": message,
	}
}

// NewErrorResponse wraps a human-readable error string:
// {success: false, error: "..."}
func NewErrorResponse(message string) Response {
	return Response{
		"success": false,
		"error":   message,
	}
}
