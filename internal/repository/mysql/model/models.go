package model

// All lists every table in migration order.
func All() []any {
	return []any{&User{}, &Thread{}, &Comment{}, &Reply{}, &Like{}}
}
