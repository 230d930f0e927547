package main

import "embed"

const logoPath = "/static/logo.svg"

//go:embed static
var staticFiles embed.FS
