package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestEnvOverridesDashedFlags(t *testing.T) {
	t.Setenv("CGCALC_LOG_LEVEL", "debug")
	t.Setenv("CGCALC_STORE", "/tmp/cgcalc-state")

	newRootCmd()

	assert.Equal(t, "debug", viper.GetString("log-level"),
		"underscored variables should reach dashed flag keys")
	assert.Equal(t, "/tmp/cgcalc-state", viper.GetString("store"))
}

func TestFlagDefaults(t *testing.T) {
	newRootCmd()

	assert.Equal(t, "config.yaml", viper.GetString("config"))
	assert.Equal(t, ".cgcalc", viper.GetString("store"))
}
