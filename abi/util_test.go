package abi

import "reflect"

func derefAny(p any) any {
	return reflect.ValueOf(p).Elem().Interface()
}

func reflectTypeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}
