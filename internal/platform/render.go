package platform

import "strings"

// Startup file templates. The {header} line embeds the original command in
// the platform's comment syntax so listing can recover it without parsing
// the format underneath.
const desktopEntryTemplate = `{header}
[Desktop Entry]
Type=Application
Version=1.0
Name={name}
Comment={name} startup script
Exec={command}
StartupNotify=false
Terminal=false
`

const powerShellTemplate = `{header}
Start-Process "cmd.exe" -ArgumentList "/c {command}" -WindowStyle Hidden{redirects}
`

const launchdPlistTemplate = `{header}
<?xml version="1.0" encoding="UTF-8"?>
<!DOCTYPE plist PUBLIC "-//Apple//DTD PLIST 1.0//EN" "http://www.apple.com/DTDs/PropertyList-1.0.dtd">
<plist version="1.0">
<dict>
    <key>Label</key>
    <string>{name}</string>
    <key>ProgramArguments</key>
    <array>
        <string>{command}</string>
    </array>
    <key>RunAtLoad</key>
    <true/>
    <key>KeepAlive</key>
    <true/>
{channels}</dict>
</plist>
`

// Render produces the startup file body that runs command at login. name is
// the display label embedded in formats that carry one. stdoutPath and
// stderrPath are optional redirection targets; profiles that cannot express
// redirection ignore them.
//
// Profiles come from ProfileFor, so the platform is always one of the three
// registered ones here.
func (p Profile) Render(name, command, stdoutPath, stderrPath string) string {
	header := p.Comment(command)
	switch p.Platform {
	case Linux:
		return renderDesktopEntry(header, name, command)
	case Windows:
		return renderPowerShell(header, command, stdoutPath, stderrPath)
	case MacOS:
		return renderLaunchdPlist(header, name, command, stdoutPath, stderrPath)
	default:
		return ""
	}
}

func renderDesktopEntry(header, name, command string) string {
	body := strings.ReplaceAll(desktopEntryTemplate, "{header}", header)
	body = strings.ReplaceAll(body, "{name}", name)
	return strings.ReplaceAll(body, "{command}", command)
}

func renderPowerShell(header, command, stdoutPath, stderrPath string) string {
	var redirects strings.Builder
	if stdoutPath != "" {
		redirects.WriteString(" -RedirectStandardOutput ")
		redirects.WriteString(stdoutPath)
	}
	if stderrPath != "" {
		redirects.WriteString(" -RedirectStandardError ")
		redirects.WriteString(stderrPath)
	}
	body := strings.ReplaceAll(powerShellTemplate, "{header}", header)
	body = strings.ReplaceAll(body, "{command}", command)
	return strings.ReplaceAll(body, "{redirects}", redirects.String())
}

func renderLaunchdPlist(header, name, command, stdoutPath, stderrPath string) string {
	var channels strings.Builder
	if stdoutPath != "" {
		channels.WriteString("    <key>StandardOutPath</key>\n    <string>")
		channels.WriteString(stdoutPath)
		channels.WriteString("</string>\n")
	}
	if stderrPath != "" {
		channels.WriteString("    <key>StandardErrorPath</key>\n    <string>")
		channels.WriteString(stderrPath)
		channels.WriteString("</string>\n")
	}
	body := strings.ReplaceAll(launchdPlistTemplate, "{header}", header)
	body = strings.ReplaceAll(body, "{name}", name)
	body = strings.ReplaceAll(body, "{command}", command)
	return strings.ReplaceAll(body, "{channels}", channels.String())
}
