package basicproject

import (
	"fmt"
	"reflect"

	"github.com/docker/docker/pkg/namesgenerator"
	"github.com/google/uuid"
	"github.com/iancoleman/strcase"
)

func GetRandomName(retry int) string {
	return fmt.Sprint(namesgenerator.GetRandomName(retry), "_", uuid.NewString()[:8])
}

// fixtureName builds a registry name such as "derived_fixture_bold_turing_1a2b3c4d".
func fixtureName(fixture Fixture) string {
	return strcase.ToSnake(typeName(fixture)) + "_" + GetRandomName(0)
}

func typeName(v interface{}) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}
