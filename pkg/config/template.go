package config

// Template is the starter configuration written by `alignsanity init`.
// It documents the knobs without enabling any overrides, so a fresh
// project behaves exactly like the built-in defaults.
const Template = `# alignsanity configuration
#
# Every key below is optional. Languages not listed here use the
# built-in anchor tables; languages without a table are left alone.

# Sidecar backups (<file>.alignsanity.bak) before rewriting.
backups:
  enabled: true

# Glob patterns skipped during file discovery.
# ignore:
#   - "vendor/**"
#   - "**/*.generated.yml"

# Per-language overrides. Setting "anchors" replaces the built-in
# rules for that language wholesale.
# languages:
#   json:
#     enabled: false
#   yaml:
#     anchors:
#       - kind: colon
#         separators: [":"]
#         spacing: " "
#         pad_after: true
`
