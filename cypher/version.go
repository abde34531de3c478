package cypher

// Version of the library, reported by the CLI.
const Version = "0.3.0"
