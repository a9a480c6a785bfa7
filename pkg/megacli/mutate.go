package megacli

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Write, read and cache policies accepted by the controller.
var (
	writePolicies = []string{"WT", "WB"}
	readPolicies  = []string{"NORA", "RA", "ADRA"}
	cachePolicies = []string{"Direct", "Cached"}
	raidLevelSet  = []int{0, 1, 5, 6}
	stripeSizes   = []int{8, 16, 32, 64, 128, 256, 512, 1024}
)

// CreateOptions describes a logical drive to create. Devices and HotSpares
// are enclosure:slot pairs ("E0:S0"). SizeMB, StripeSize and the policies
// are optional; zero values are omitted from the command line.
type CreateOptions struct {
	RaidLevel    int
	Devices      []string
	Adapter      int
	WritePolicy  string
	ReadPolicy   string
	CachePolicy  string
	CachedBadBBU *bool
	SizeMB       int
	StripeSize   int
	HotSpares    []string
	AfterLD      string
	Force        bool
}

func (o CreateOptions) validate() error {
	if !containsInt(raidLevelSet, o.RaidLevel) {
		return errors.Errorf("raid level must be one of %v, got %d", raidLevelSet, o.RaidLevel)
	}
	if len(o.Devices) == 0 {
		return errors.New("at least one device is required")
	}
	if o.WritePolicy != "" && !containsString(writePolicies, o.WritePolicy) {
		return errors.Errorf("write policy must be one of %v, got %q", writePolicies, o.WritePolicy)
	}
	if o.ReadPolicy != "" && !containsString(readPolicies, o.ReadPolicy) {
		return errors.Errorf("read policy must be one of %v, got %q", readPolicies, o.ReadPolicy)
	}
	if o.CachePolicy != "" && !containsString(cachePolicies, o.CachePolicy) {
		return errors.Errorf("cache policy must be one of %v, got %q", cachePolicies, o.CachePolicy)
	}
	if o.SizeMB < 0 {
		return errors.Errorf("size must be positive, got %d", o.SizeMB)
	}
	if o.StripeSize != 0 && !containsInt(stripeSizes, o.StripeSize) {
		return errors.Errorf("stripe size must be one of %v, got %d", stripeSizes, o.StripeSize)
	}
	if o.Adapter < 0 {
		return errors.Errorf("adapter must be non-negative, got %d", o.Adapter)
	}
	return nil
}

func (o CreateOptions) args() []string {
	args := []string{fmt.Sprintf("-R%d[%s]", o.RaidLevel, strings.Join(o.Devices, ","))}

	if o.WritePolicy != "" {
		args = append(args, o.WritePolicy)
	}
	if o.ReadPolicy != "" {
		args = append(args, o.ReadPolicy)
	}
	if o.CachePolicy != "" {
		args = append(args, o.CachePolicy)
	}
	if o.CachedBadBBU != nil {
		if *o.CachedBadBBU {
			args = append(args, "CachedBadBBU")
		} else {
			args = append(args, "NoCachedBadBBU")
		}
	}
	if o.SizeMB > 0 {
		args = append(args, fmt.Sprintf("-sz%d", o.SizeMB))
	}
	if o.StripeSize > 0 {
		args = append(args, fmt.Sprintf("-strpsz%d", o.StripeSize))
	}
	if len(o.HotSpares) > 0 {
		args = append(args, fmt.Sprintf("-Hsp[%s]", strings.Join(o.HotSpares, ",")))
	}
	if o.AfterLD != "" {
		args = append(args, "-afterLd", o.AfterLD)
	}
	if o.Force {
		args = append(args, "-Force")
	}
	return append(args, fmt.Sprintf("-a%d", o.Adapter))
}

// CreateLogicalDrive validates opts, builds a -CfgLDAdd command and runs
// it. The controller's confirmation output is returned as normalized lines.
func (c *Client) CreateLogicalDrive(ctx context.Context, opts CreateOptions) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return c.Execute(ctx, append([]string{"-CfgLDAdd"}, opts.args()...)...)
}

// RemoveOptions identifies a logical drive to delete.
type RemoveOptions struct {
	Target  int
	Adapter int
	Force   bool
}

func (o RemoveOptions) validate() error {
	if o.Target < 0 {
		return errors.Errorf("target drive must be non-negative, got %d", o.Target)
	}
	if o.Adapter < 0 {
		return errors.Errorf("adapter must be non-negative, got %d", o.Adapter)
	}
	return nil
}

func (o RemoveOptions) args() []string {
	args := []string{fmt.Sprintf("-L%d", o.Target)}
	if o.Force {
		args = append(args, "-Force")
	}
	return append(args, fmt.Sprintf("-a%d", o.Adapter))
}

// RemoveLogicalDrive validates opts, builds a -CfgLdDel command and runs
// it. The controller's confirmation output is returned as normalized lines.
func (c *Client) RemoveLogicalDrive(ctx context.Context, opts RemoveOptions) ([]string, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return c.Execute(ctx, append([]string{"-CfgLdDel"}, opts.args()...)...)
}

func containsInt(set []int, v int) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}

func containsString(set []string, v string) bool {
	for _, s := range set {
		if s == v {
			return true
		}
	}
	return false
}
