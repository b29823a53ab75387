// Package config loads uuidgen settings.
//
// Settings come from three layers, later ones winning: built-in defaults
// (Default), an optional TOML or YAML file (Load) and UUIDGEN_* environment
// variables (FromEnv). Command-line flags are applied by the caller on top.
package config
