// Command initramfs_init prepares and transfers control to the real root
// filesystem: mount /proc, /sys, /dev, mount the real root at /newroot,
// bind-mount the old root under /newroot/oldroot, chroot, lazily unmount
// and remove the old root, then execve /sbin/init.
package main

import (
	"os"

	"github.com/BurntSushi/toml"
	"github.com/sirupsen/logrus"

	"github.com/tlenix/tlenix/internal/diag"
	"github.com/tlenix/tlenix/pkg/fsops"
	"github.com/tlenix/tlenix/pkg/process"
)

// mountsConfigPath is the optional TOML override: an initramfs that needs
// a non-default real-root device or filesystem drops a file here instead
// of patching the binary.
const mountsConfigPath = "/etc/tlenix/mounts.toml"

// mountSpec is one row of the real-root mount table, overridable via
// mountsConfigPath.
type mountSpec struct {
	Source string `toml:"source"`
	Target string `toml:"target"`
	FSType string `toml:"fstype"`
}

type mountsConfig struct {
	RealRoot mountSpec `toml:"real_root"`
}

func defaultConfig() mountsConfig {
	return mountsConfig{
		RealRoot: mountSpec{Source: "/dev/sda2", Target: "/newroot", FSType: "ext4"},
	}
}

func loadConfig(log *logrus.Entry) mountsConfig {
	cfg := defaultConfig()
	data, err := os.ReadFile(mountsConfigPath)
	if err != nil {
		return cfg
	}
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		log.WithError(err).Warnf("malformed %s, using defaults", mountsConfigPath)
		return defaultConfig()
	}
	return cfg
}

func main() {
	log := diag.New("initramfs_init")
	cfg := loadConfig(log)

	steps := []func() error{
		func() error { return fsops.Mkdir("/proc", 0o555) },
		func() error { return fsops.Mount("proc", "/proc", fsops.MountProc, 0, "") },
		func() error { return fsops.Mkdir("/sys", 0o555) },
		func() error { return fsops.Mount("sysfs", "/sys", fsops.MountSysfs, 0, "") },
		func() error { return fsops.Mkdir("/dev", 0o755) },
		func() error { return fsops.Mount("devtmpfs", "/dev", fsops.MountDevtmpfs, 0, "") },

		func() error { return fsops.Mkdir(cfg.RealRoot.Target, 0o755) },
		func() error {
			return fsops.Mount(cfg.RealRoot.Source, cfg.RealRoot.Target, fsops.MountType(cfg.RealRoot.FSType), 0, "")
		},

		func() error { return fsops.Mkdir(cfg.RealRoot.Target+"/oldroot", 0o755) },
		func() error {
			return fsops.Mount("/", cfg.RealRoot.Target+"/oldroot", fsops.MountBind, fsops.MountFlagBind|fsops.MountFlagRec, "")
		},

		func() error { return fsops.ChangeDir(cfg.RealRoot.Target) },
		func() error { return fsops.PivotRoot(".", "oldroot") },
		func() error { return fsops.Chroot(".") },
		func() error { return fsops.ChangeDir("/") },

		func() error { return fsops.Unmount("/oldroot", fsops.UnmountDetach) },
		func() error { return fsops.Rmdir("/oldroot") },
	}

	for _, step := range steps {
		if err := step(); err != nil {
			os.Exit(diag.Fail(log, err))
		}
	}

	if err := process.Execve([]string{"/sbin/init"}, os.Environ()); err != nil {
		os.Exit(diag.Fail(log, err))
	}
}
