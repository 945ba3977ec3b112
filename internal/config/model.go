// internal/config/model.go
//
// Typed configuration model for the Cerney Designs service.
//
// Context
// -------
// These structs define the shape of the configuration tree that
// `internal/config/loader.go` builds from three overlay layers:
//
//   • optional `conf/.env`                     – dotenv values,
//   • `conf/global.yaml`                       – primary static file,
//   • `CERNEY_`-prefixed environment overrides – highest precedence.
//
// Validation happens immediately after unmarshal; the app fails fast if
// required fields are missing.  The Storage and Mirror sections are
// optional collaborators: when `enabled` is false the service runs with
// those stages in the "not configured" state and skips them per the
// intake pipeline's partial-failure policy.
//
// Notes
// -----
//   • Struct tags use `koanf:"…"`, not `yaml:"…"`—Koanf ignores `yaml`
//     tags unless configured otherwise.
//   • The `Paths` block is filled at runtime; YAML must not try to set it.
//   • Oxford commas, two spaces after periods.

package config

//
// HTTP section
//

// HTTP holds web-server tunables.
type HTTP struct {
	ListenAddr string `koanf:"listen_addr" validate:"required,hostname_port"`
}

//
// Ledger section
//

// Ledger locates the local JSON request ledger.  Relative paths are
// resolved against Paths.Root at boot.
type Ledger struct {
	Path string `koanf:"path" validate:"required"`
}

//
// Storage section (optional)
//

// Storage configures the S3 artifact publisher.  When Enabled is false the
// publisher is never constructed and uploads are skipped.
type Storage struct {
	Enabled       bool   `koanf:"enabled"`
	Bucket        string `koanf:"bucket"          validate:"required_if=Enabled true"`
	Region        string `koanf:"region"          validate:"required_if=Enabled true"`
	KeyPrefix     string `koanf:"key_prefix"`
	PublicBaseURL string `koanf:"public_base_url" validate:"required_if=Enabled true,omitempty,url"`
}

//
// Mirror section (optional)
//

// Mirror configures the relational copy of each request.  The DSN is a
// go-sql-driver/mysql string; it usually arrives via the CERNEY_MIRROR__DSN
// environment override so credentials stay out of flat files.
type Mirror struct {
	Enabled bool   `koanf:"enabled"`
	DSN     string `koanf:"dsn" validate:"required_if=Enabled true"`
}

//
// Admin section
//

// Admin guards the operator listing endpoint.  An empty token disables the
// endpoint rather than opening it.
type Admin struct {
	Token string `koanf:"token"`
}

//
// Paths section (runtime only)
//

// Paths is resolved at runtime—never set in YAML or env.  The loader
// discovers Root (repo root or CERNEY_ROOT override) so later code can
// build absolute file paths.
type Paths struct {
	Root string // CERNEY_ROOT or discovered parent
}

//
// Root aggregate
//

// Config is the immutable aggregate returned by Load() and cached in an
// atomic.Pointer for lock-free reads throughout the app lifetime.
type Config struct {
	HTTP    HTTP    `koanf:"http"`
	Ledger  Ledger  `koanf:"ledger"`
	Storage Storage `koanf:"storage"`
	Mirror  Mirror  `koanf:"mirror"`
	Admin   Admin   `koanf:"admin"`
	Paths   Paths   `koanf:"-"` // not loaded from config files
}
