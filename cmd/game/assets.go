package main

import "embed"

//go:embed assets/configs/*.json assets/maps/*.tmx
var assetsFS embed.FS
