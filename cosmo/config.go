package cosmo

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingdwd/Copter/logging"
	"github.com/kingdwd/Copter/parse"
	"github.com/kingdwd/Copter/version"
)

// ConfigHeader is the header line expected at the top of ini config files.
const ConfigHeader = "Cosmology"

var requiredVars = []string{"h", "n", "Omega_m", "Omega_b"}

// ExampleConfig returns an example ini config file for the fiducial
// cosmology.
func ExampleConfig() string {
	return fmt.Sprintf(`[%s]

# Optional. The Copter version this file was written for. Files from a
# different major version, or from a newer source, are rejected.
Version = %s

# Required. Hubble parameter today, H0 = 100 h km/s/Mpc.
h = %g
# Required. Scalar spectral index.
n = %g
# Required. Matter and baryon density parameters today.
Omega_m = %g
Omega_b = %g

# Optional. Linear power spectrum normalization at 8 Mpc/h. Only used if a
# transfer function is given.
sigma8 = %g

# Optional. Transfer function file, relative to this config file, and the
# 1-indexed columns holding k (h/Mpc) and T(k).
# tkfile = camb_tk.dat
# kcol = %d
# tcol = %d

# Optional. Present-day CMB temperature in Kelvin.
# Tcmb = %g
`, ConfigHeader, version.SourceVersion, DefaultH, DefaultN, DefaultOmegaM, DefaultOmegaB,
		DefaultSigma8, DefaultKColumn, DefaultTColumn, DefaultConstants.Tcmb)
}

// yamlConfig mirrors the ini variables. Pointer fields distinguish missing
// values from zeros.
type yamlConfig struct {
	H      *float64 `yaml:"h"`
	N      *float64 `yaml:"n"`
	OmegaM *float64 `yaml:"Omega_m"`
	OmegaB *float64 `yaml:"Omega_b"`
	Sigma8 *float64 `yaml:"sigma8"`
	TkFile string   `yaml:"tkfile"`
	KCol   int      `yaml:"kcol"`
	TCol   int      `yaml:"tcol"`
	Tcmb   float64  `yaml:"Tcmb"`

	Version string `yaml:"Version"`
}

// ReadConfig reads a cosmology config file. Files ending in .yaml or .yml
// are YAML documents; anything else is an ini file with a [Cosmology]
// header. Either way the variables are h, n, Omega_m and Omega_b (required),
// plus sigma8, tkfile, kcol, tcol, Tcmb and Version (optional). A relative
// tkfile is resolved against the directory holding the config file. Unknown
// variables are errors in both formats.
//
// Unreadable files give ErrIO; missing or malformed variables give
// ErrConfiguration.
func ReadConfig(path string) (Config, error) {
	const op = "cosmo.read_config"

	bs, err := os.ReadFile(path)
	if err != nil {
		return Config{}, opErr(op, KindIO, path, err)
	}

	var cfg Config
	var tf TransferFile
	var ver string
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		cfg, tf, ver, err = parseYAMLConfig(bs)
	default:
		cfg, tf, ver, err = parseIniConfig(bs, path)
	}
	if err == nil {
		err = checkVersion(ver)
	}
	if err != nil {
		return Config{}, opErr(op, KindConfiguration, path, err)
	}

	if tf.Path != "" {
		if !filepath.IsAbs(tf.Path) {
			tf.Path = filepath.Join(filepath.Dir(path), tf.Path)
		}
		cfg.TransferFile = &tf
	}

	logging.L().Debug(op, "path", path, "transfer_file", tf.Path)
	return cfg, nil
}

// checkVersion returns an error if a config file written for version ver
// can't be read by this source.
func checkVersion(ver string) error {
	if ver == "" {
		return nil
	}
	v, err := version.Parse(ver)
	if err != nil {
		return fmt.Errorf("I couldn't parse the 'Version' variable: %w", err)
	}
	src := version.Current()
	if v.Major != src.Major || v.Compare(src) > 0 {
		return fmt.Errorf("The 'Version' variable is set to %s, but the "+
			"version of the source is %s.", ver, version.SourceVersion)
	}
	return nil
}

func parseIniConfig(bs []byte, path string) (Config, TransferFile, string, error) {
	var (
		p           Params
		c           Constants
		tkfile, ver string
		kcol, tcol  int64
	)

	vars := parse.NewConfigVars(ConfigHeader)
	vars.Float(&p.H, "h", 0)
	vars.Float(&p.N, "n", 0)
	vars.Float(&p.OmegaM, "Omega_m", 0)
	vars.Float(&p.OmegaB, "Omega_b", 0)
	vars.Float(&p.Sigma8, "sigma8", 0)
	vars.String(&tkfile, "tkfile", "")
	vars.Int(&kcol, "kcol", DefaultKColumn)
	vars.Int(&tcol, "tcol", DefaultTColumn)
	vars.Float(&c.Tcmb, "Tcmb", 0)
	vars.String(&ver, "Version", "")

	if err := parse.Parse(bs, path, vars); err != nil {
		return Config{}, TransferFile{}, "", err
	}
	if missing := vars.Missing(requiredVars...); len(missing) > 0 {
		return Config{}, TransferFile{}, "", fmt.Errorf(
			"The config file %s does not set the required variable(s) %s.",
			path, strings.Join(missing, ", "),
		)
	}

	cfg := Config{Params: p, Constants: c}
	tf := TransferFile{Path: tkfile, KColumn: int(kcol), TColumn: int(tcol)}
	return cfg, tf, ver, nil
}

func parseYAMLConfig(bs []byte) (Config, TransferFile, string, error) {
	var dto yamlConfig
	dec := yaml.NewDecoder(bytes.NewReader(bs))
	dec.KnownFields(true)
	if err := dec.Decode(&dto); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, TransferFile{}, "", err
	}

	missing := []string{}
	for _, f := range []struct {
		name string
		val  *float64
	}{
		{"h", dto.H}, {"n", dto.N}, {"Omega_m", dto.OmegaM}, {"Omega_b", dto.OmegaB},
	} {
		if f.val == nil {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return Config{}, TransferFile{}, "", errors.New(
			"missing required variable(s) " + strings.Join(missing, ", "),
		)
	}

	p := Params{H: *dto.H, N: *dto.N, OmegaM: *dto.OmegaM, OmegaB: *dto.OmegaB}
	if dto.Sigma8 != nil {
		p.Sigma8 = *dto.Sigma8
	}
	cfg := Config{Params: p, Constants: Constants{Tcmb: dto.Tcmb}}
	tf := TransferFile{Path: dto.TkFile, KColumn: dto.KCol, TColumn: dto.TCol}
	return cfg, tf, dto.Version, nil
}

// FromFile constructs a Cosmology from a config file. See ReadConfig for
// the file format.
func FromFile(path string) (*Cosmology, error) {
	cfg, err := ReadConfig(path)
	if err != nil {
		return nil, err
	}
	return New(cfg)
}

// InitializeFromFile replaces the parameters of c, and its transfer function
// if the file names one, with those of a config file. c is unchanged on
// error.
func (c *Cosmology) InitializeFromFile(path string) error {
	cfg, err := ReadConfig(path)
	if err != nil {
		return err
	}
	next, err := New(cfg)
	if err != nil {
		return err
	}
	if cfg.TransferFile == nil {
		next.k, next.t, next.tSpline = c.k, c.t, c.tSpline
	}
	*c = *next
	return nil
}
