package domain

import "go.trai.ch/zerr"

var (
	// ErrConfigurationMissing is returned when the settings file does not exist.
	ErrConfigurationMissing = zerr.New("settings file not found, copy " + ExampleSettingsFileName + " to " +
		SettingsFileName + " or run 'herd init'")

	// ErrConfigParseFailed is returned when the settings file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse settings file")

	// ErrConfigExists is returned when init would overwrite an existing settings file.
	ErrConfigExists = zerr.New("settings file already exists")

	// ErrConfigWriteFailed is returned when the settings template cannot be written.
	ErrConfigWriteFailed = zerr.New("failed to write settings file")

	// ErrSettingMissing is returned when a task requires a setting that is not configured.
	ErrSettingMissing = zerr.New("required setting is missing")

	// ErrTaskNotFound is returned when an invocation names a task that is not registered.
	ErrTaskNotFound = zerr.New("task not found, run 'herd list' to see available tasks")

	// ErrNoTasksSpecified is returned when run is called without any task.
	ErrNoTasksSpecified = zerr.New("no tasks specified")

	// ErrInvalidInvocation is returned when a task token cannot be parsed.
	ErrInvalidInvocation = zerr.New("invalid task invocation")

	// ErrInvalidArguments is returned when task arguments do not match the task's parameters.
	ErrInvalidArguments = zerr.New("invalid task arguments")

	// ErrActionFailed is returned when a task's action fails.
	ErrActionFailed = zerr.New("task failed")

	// ErrNotConnected is returned when a task needs the cloud before connect ran.
	ErrNotConnected = zerr.New("not connected to the cloud, run connect first")

	// ErrNoServerSelected is returned when a task needs a server before herd or birth ran.
	ErrNoServerSelected = zerr.New("no server selected, run herd or birth first")

	// ErrServerNotFound is returned when no server with the requested name exists.
	ErrServerNotFound = zerr.New("server not found")

	// ErrNoPublicAddress is returned when a server has no public IPv4 address yet.
	ErrNoPublicAddress = zerr.New("server has no public IPv4 address")

	// ErrImageNotFound is returned when the configured base image is not available.
	ErrImageNotFound = zerr.New("image not found")

	// ErrFlavorNotFound is returned when no flavor matches the requested size.
	ErrFlavorNotFound = zerr.New("no flavor matches the requested ram or disk size")

	// ErrVolumeNotFound is returned when no volume with the requested name exists.
	ErrVolumeNotFound = zerr.New("volume not found")

	// ErrZoneNotFound is returned when the configured DNS domain has no zone.
	ErrZoneNotFound = zerr.New("dns zone not found")

	// ErrSaltmasterMissing is returned when a task needs the salt master and none exists.
	ErrSaltmasterMissing = zerr.New("salt master does not exist, run make_saltmaster first")

	// ErrAuthenticationFailed is returned when the cloud rejects the credentials.
	ErrAuthenticationFailed = zerr.New("cloud authentication failed")

	// ErrCloudRequestFailed is returned when a provisioning API call fails.
	ErrCloudRequestFailed = zerr.New("cloud request failed")

	// ErrConnectionFailed is returned when an SSH connection cannot be established.
	ErrConnectionFailed = zerr.New("failed to connect to host")

	// ErrRemoteCommandFailed is returned when a remote command exits with a non-zero status.
	ErrRemoteCommandFailed = zerr.New("remote command failed")

	// ErrTransferFailed is returned when a file cannot be copied to or from a host.
	ErrTransferFailed = zerr.New("file transfer failed")

	// ErrLocalCommandFailed is returned when a local command exits with a non-zero status.
	ErrLocalCommandFailed = zerr.New("local command failed")

	// ErrProfilesReadFailed is returned when a cloud profiles document cannot be read.
	ErrProfilesReadFailed = zerr.New("failed to read cloud profiles")

	// ErrProfilesWriteFailed is returned when a cloud profiles document cannot be written.
	ErrProfilesWriteFailed = zerr.New("failed to write cloud profiles")

	// ErrPromptFailed is returned when the operator cannot be prompted for input.
	ErrPromptFailed = zerr.New("failed to read operator input")
)
