/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package subsystem

// defaultPrefixes are the library's built-in classification rules. They
// follow the naming convention of the firmware tables: the first word is
// the emitting module.
//
// Configuration persistence events share a suffix across modules
// ("WIFI_SAVE_CFG_...", "OTA_RESTORE_CFG_..."). Their wildcard rules are one
// segment deeper than any owner prefix, so they win the longest-prefix match.
var defaultPrefixes = []prefixRule{
	// network stack and the embedded web server/client
	{"WIFI", Networking},
	{"HTTP", Networking},
	{"WEB_SERVER", Networking},
	{"WEB_CLIENT", Networking},
	{"ROUTES", Networking},
	{"MDNS", Networking},

	// flash filesystem and JSON files stored on it
	{"SPIFFS", Filesystem},
	{"FILE_TO_JSON", Filesystem},

	{"OTA", OTA},

	// sensors and pins
	{"GPIO", PeripheralIO},
	{"DHT", PeripheralIO},
	{"MAX6675", PeripheralIO},

	{"CRON", Scheduling},

	{"SNTP", Timekeeping},
	{"TIMEDATE", Timekeeping},
	{"TIMEZONE", Timekeeping},

	{"LOGGER", Diagnostics},
	{"DIAG", Diagnostics},
	{"MEM_MON", Diagnostics},

	{"ESPBOT", System},
	{"ESPOT", System},
	{"UTILS", System},

	// any module's persisted configuration
	{"*_RESTORE_CFG", Configuration},
	{"*_SAVE_CFG", Configuration},
	{"*_SAVED_CFG", Configuration},
	{"*_INIT_CFG", Configuration},
	{"*_INIT_DEFAULT_CFG", Configuration},
}
