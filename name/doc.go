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

// Package name defines the symbolic identifiers that event codes resolve to.
//
// A Name such as "WIFI_CONNECTED" or "SPIFFS_FLASH_ERASE_TIMEOUT" is what the
// diagnostic console shows in place of a raw code. Names are upper-case,
// underscore-separated, and start with the emitting subsystem:
//
//   - "WIFI_..."   station / access point events;
//   - "SPIFFS_..." flash filesystem;
//   - "OTA_..."    over-the-air updates;
//   - "CRON_..."   scheduled jobs.
//
// The zero value (Empty) never appears in a registry; it is what a resolver
// hands back for a code it does not know.
package name
