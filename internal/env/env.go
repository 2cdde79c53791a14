package env

import (
	"log"

	"github.com/vrischmann/envconfig"
)

type Environment struct {
	Debug bool `envconfig:"default=false"`
}

var env *Environment

func init() {
	var err error
	if env, err = Load(); err != nil {
		log.Fatal(err)
	}
}

// Load reads the environment again. Get returns the copy read at startup.
func Load() (*Environment, error) {
	e := &Environment{}
	if err := envconfig.Init(e); err != nil {
		return nil, err
	}
	return e, nil
}

func Get() *Environment {
	return env
}
