package configs

import _ "embed"

// Application holds the bundled application.yml used when no properties file is configured.
//
//go:embed application.yml
var Application []byte

// Messages holds the bundled messages.yml.
//
//go:embed messages.yml
var Messages []byte
