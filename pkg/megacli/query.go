package megacli

import "context"

// Adapters reports all installed MegaRAID adapters.
func (c *Client) Adapters(ctx context.Context) ([]Record, error) {
	lines, err := c.Execute(ctx, "-AdpAllInfo", "-aAll")
	if err != nil {
		return nil, err
	}
	return parseBlocks(lines, adapterSpec), nil
}

// Enclosures reports all enclosures attached to any adapter.
func (c *Client) Enclosures(ctx context.Context) ([]Record, error) {
	lines, err := c.Execute(ctx, "-EncInfo", "-aALL")
	if err != nil {
		return nil, err
	}
	return parseBlocks(lines, enclosureSpec), nil
}

// LogicalDrives reports all configured logical drives.
func (c *Client) LogicalDrives(ctx context.Context) ([]Record, error) {
	lines, err := c.Execute(ctx, "-LDInfo", "-LAll", "-aAll")
	if err != nil {
		return nil, err
	}
	return parseBlocks(lines, logicalDriveSpec), nil
}

// PhysicalDrives reports all installed physical drives.
func (c *Client) PhysicalDrives(ctx context.Context) ([]Record, error) {
	lines, err := c.Execute(ctx, "-PDList", "-aAll")
	if err != nil {
		return nil, err
	}
	return parseBlocks(lines, physicalDriveSpec), nil
}

// BatteryBackupUnits reports the battery backup unit of every adapter.
func (c *Client) BatteryBackupUnits(ctx context.Context) ([]Record, error) {
	lines, err := c.Execute(ctx, "-AdpBbuCmd", "-aAll")
	if err != nil {
		return nil, err
	}
	return parseBlocks(lines, bbuSpec), nil
}
