package config_test

import (
	"errors"
	"fmt"

	"github.com/0xalexb/tanu-cfg/config"
)

func ExampleConfig() {
	location, err := config.NewLocation("testdata", "cpptanu_cfg_utest", "tanu_cfg")
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	cfg := config.New(location)

	err = cfg.Load("utest.json")
	if err != nil {
		fmt.Printf("Error: %v\n", err)

		return
	}

	id, _ := cfg.GetInt("id")
	lang, _ := cfg.GetString("/detail/lang")
	tags, _ := cfg.GetStringVec("tags")

	fmt.Println(id, lang, tags)
	// Output: 32 c++ [neko cat pokora]
}

func ExampleConfig_GetString_typeMismatch() {
	location, _ := config.NewLocation("testdata", "cpptanu_cfg_utest", "tanu_cfg")
	cfg := config.New(location)

	_, err := cfg.GetString("id")
	fmt.Println(errors.Is(err, config.ErrNotLoaded))

	_ = cfg.Load("utest.json")

	_, err = cfg.GetString("id")
	fmt.Println(err)
	// Output:
	// true
	// /id's value is not string
}

func ExampleConfig_DumpFlattenedView() {
	location, _ := config.NewLocation("testdata", "cpptanu_cfg_utest", "tanu_cfg")
	cfg := config.New(location)

	_, ok := cfg.DumpFlattenedView()
	fmt.Println(ok)

	_ = cfg.Load("utest.json")

	view, _ := cfg.DumpFlattenedView()
	fmt.Println(view)
	// Output:
	// false
	// {"/detail/lang":"c++","/detail/lang-patch":0.2864,"/detail/lang-version":10,"/id":32,"/name":"tako","/tags/0":"neko","/tags/1":"cat","/tags/2":"pokora","/version":1.28}
}
