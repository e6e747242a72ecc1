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

// Package config loads the evcode server and CLI configuration from an HCL
// file. Every block is optional; missing values keep their defaults.
//
//	log     { level = "info"  format = "text" }
//	http    { listen = ":8080" }
//	grpc    { listen = ":9090" }
//	display { fallback = "raw" }
//	subsystem "networking" { prefixes = ["ESPCONN"] }
//	override "ESPOT_SET_NAME_TRUNCATED" { subsystem = "system" }
package config
