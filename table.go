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

package evcode

// table is the canonical code listing shared with the firmware, in source
// order. The order matters: when a code appears twice the later entry wins.
//
// The last block belongs to the drivers/library code space of the firmware
// and reuses 0100-0105, which the core code space assigns to WEB_CLIENT.
var table = []Entry{
	{0x0010, "FILE_TO_JSON_FS_NOT_AVAILABLE"},
	{0x0011, "FILE_TO_JSON_FILE_NOT_FOUND"},
	{0x0012, "FILE_TO_JSON_CANNOT_OPEN_FILE"},
	{0x0013, "FILE_TO_JSON_HEAP_EXHAUSTED"},
	{0x0014, "FILE_TO_JSON_CANNOT_PARSE_JSON"},
	{0x0015, "FILE_TO_JSON_PAIR_NOT_FOUND"},

	{0x0020, "GPIO_GETNUM_WRONG_INDEX"},
	{0x0021, "GPIO_CONFIG_WRONG_INDEX"},
	{0x0022, "GPIO_CONFIG_WRONG_TYPE"},
	{0x0023, "GPIO_UNCONFIG_WRONG_INDEX"},
	{0x0024, "GPIO_GET_CONFIG_WRONG_INDEX"},
	{0x0025, "GPIO_READ_WRONG_INDEX"},
	{0x0026, "GPIO_SET_WRONG_INDEX"},
	{0x0027, "GPIO_SET_WRONG_LEVEL"},
	{0x0028, "GPIO_SET_CANNOT_CHANGE"},

	{0x0030, "LOGGER_RESTORE_CFG_INCOMPLETE"},
	{0x0031, "LOGGER_RESTORE_CFG_FILE_NOT_FOUND"},
	{0x0032, "LOGGER_SAVED_CFG_NOT_UPDATED_INCOMPLETE"},
	{0x0033, "LOGGER_SAVE_CFG_HEAP_EXHAUSTED"},
	{0x0034, "LOGGER_SAVE_CFG_CANNOT_OPEN_FILE"},
	{0x0035, "LOGGER_SAVE_CFG_FS_NOT_AVAILABLE"},
	{0x0036, "LOGGER_INIT_CFG_DEFAULT_CFG"},
	{0x0037, "DIAG_RESTORE_CFG_INCOMPLETE"},
	{0x0038, "DIAG_SAVED_CFG_NOT_UPDATED_INCOMPLETE"},
	{0x0039, "DIAG_SAVE_CFG_FS_NOT_AVAILABLE"},
	{0x003A, "DIAG_SAVE_CFG_CANNOT_OPEN_FILE"},
	{0x003B, "DIAG_INIT_DEFAULT_CFG"},

	{0x0040, "MDNS_START"},
	{0x0041, "MDNS_STOP"},
	{0x0042, "MEM_MON_HEAP_EXHAUSTED"},
	{0x0043, "SNTP_START"},
	{0x0044, "SNTP_STOP"},
	{0x0045, "SNTP_CANNOT_SET_TIMEZONE"},
	{0x0046, "UTILS_CANNOT_PARSE_IP"},
	{0x0047, "ESPBOT_INIT_DEFAULT_CFG"},
	{0x0048, "ESPOT_SET_NAME_TRUNCATED"},
	{0x0049, "ESPBOT_RESTORE_CFG_INCOMPLETE"},
	{0x004A, "ESPBOT_SAVED_CFG_NOT_UPDATED_INCOMPLETE"},
	{0x004B, "ESPBOT_SAVE_CFG_HEAP_EXHAUSTED"},
	{0x004C, "ESPBOT_SAVE_CFG_CANNOT_OPEN_FILE"},
	{0x004D, "ESPBOT_SAVE_CFG_FS_NOT_AVAILABLE"},

	{0x0050, "WIFI_CONNECTED"},
	{0x0051, "WIFI_DISCONNECTED"},
	{0x0052, "WIFI_AUTHMODE_CHANGE"},
	{0x0053, "WIFI_DHCP_TIMEOUT"},
	{0x0054, "WIFI_GOT_IP"},
	{0x0055, "WIFI_OPMODE_CHANGED"},
	{0x0056, "WIFI_STA_CONNECTED"},
	{0x0057, "WIFI_STA_DISCONNECTED"},
	{0x0058, "WIFI_CONNECT_NO_SSID_OR_PASSWORD_AVAILABLE"},
	{0x0059, "WIFI_RESTORE_CFG_INCOMPLETE"},
	{0x005A, "WIFI_RESTORE_CFG_FILE_NOT_FOUND"},
	{0x005B, "WIFI_SAVED_CFG_NOT_UPDATED_INCOMPLETE"},
	{0x005C, "WIFI_SAVE_CFG_HEAP_EXHAUSTED"},
	{0x005D, "WIFI_SAVE_CFG_CANNOT_OPEN_FILE"},
	{0x005E, "WIFI_SAVE_CFG_FS_NOT_AVAILABLE"},
	{0x005F, "WIFI_INIT_CFG_DEFAULT_CFG"},
	{0x0060, "WIFI_TRUNCATING_STRING_TO_31_CHAR"},
	{0x0061, "WIFI_TRUNCATING_STRING_TO_63_CHAR"},
	{0x0062, "WIFI_AP_LIST_HEAP_EXHAUSTED"},
	{0x0063, "WIFI_AP_LIST_CANNOT_COMPLETE_SCAN"},

	{0x0070, "HTTP_CLEAR_BUSY_SENDING_DATA"},
	{0x0071, "HTTP_DELETED_PENDING_RESPONSE"},
	{0x0072, "HTTP_JSON_ERROR_MSG_HEAP_EXHAUSTED"},
	{0x0073, "HTTP_SEND_BUFFER_SEND_QUEUE_FULL"},
	{0x0074, "HTTP_SEND_BUFFER_HEAP_EXHAUSTED"},
	{0x0075, "HTTP_SEND_BUFFER_ERROR"},
	{0x0076, "HTTP_RESPONSE_HEAP_EXHAUSTED"},
	{0x0077, "HTTP_SEND_REMAINING_MSG_RES_QUEUE_FULL"},
	{0x0078, "HTTP_SEND_REMAINING_MSG_HEAP_EXHAUSTED"},
	{0x0079, "HTTP_SEND_RES_QUEUE_FULL"},
	{0x007A, "HTTP_SEND_HEAP_EXHAUSTED"},
	{0x007B, "HTTP_FORMAT_HEADER_HEAP_EXHAUSTED"},
	{0x007C, "HTTP_PARSE_REQUEST_CANNOT_PARSE_EMPTY_MSG"},
	{0x007D, "HTTP_PARSE_REQUEST_HEAP_EXHAUSTED"},
	{0x007E, "HTTP_PARSE_REQUEST_CANNOT_FIND_HTTP_TOKEN"},
	{0x007F, "HTTP_PARSE_REQUEST_CANNOT_FIND_ACC_CTRL_REQ_HEADERS"},
	{0x0080, "HTTP_PARSE_REQUEST_CANNOT_FIND_ORIGIN"},
	{0x0081, "HTTP_PARSE_REQUEST_CANNOT_FIND_CONTENT_START"},
	{0x0082, "HTTP_PARSE_REQUEST_CANNOT_FIND_CONTENT_LEN"},
	{0x0083, "HTTP_SAVE_PENDING_REQUEST_HEAP_EXHAUSTED"},
	{0x0084, "HTTP_SAVE_PENDING_REQUEST_CANNOT_SAVE_REQ"},
	{0x0085, "HTTP_CHECK_PENDING_REQUESTS_CANNOT_FIND_REQ"},
	{0x0086, "HTTP_SAVE_PENDING_RESPONSE_HEAP_EXHAUSTED"},
	{0x0087, "HTTP_SAVE_PENDING_RESPONSE_CANNOT_SAVE_RES"},
	{0x0088, "HTTP_CHECK_PENDING_RESPONSE_CANNOT_FIND_RES"},
	{0x0089, "HTTP_PARSE_RESPONSE_CANNOT_PARSE_EMPTY_MSG"},
	{0x008A, "HTTP_PARSE_RESPONSE_HEAP_EXHAUSTED"},
	{0x008B, "HTTP_PARSE_RESPONSE_CANNOT_FIND_HTTP_TOKEN"},
	{0x008C, "HTTP_PARSE_RESPONSE_CANNOT_FIND_CONTENT_LEN"},
	{0x008D, "HTTP_PARSE_RESPONSE_CANNOT_FIND_CONTENT_RANGE"},
	{0x008E, "HTTP_PARSE_RESPONSE_CANNOT_FIND_RANGE_START"},
	{0x008F, "HTTP_PARSE_RESPONSE_CANNOT_FIND_RANGE_END"},
	{0x0090, "HTTP_PARSE_RESPONSE_CANNOT_FIND_RANGE_SIZE"},
	{0x0091, "HTTP_PARSE_RESPONSE_CANNOT_FIND_CONTENT_START"},
	{0x0092, "WEB_SERVER_START"},
	{0x0093, "WEB_SERVER_STOP"},
	{0x0094, "WEB_SERVER_EMPTY_URL"},

	{0x00A0, "ROUTES_WIFI_SCAN_COMPLETED_FUNCTION_HEAP_EXHAUSTED"},
	{0x00A1, "ROUTES_SEND_REMAINING_MSG_HEAP_EXHAUSTED"},
	{0x00A2, "ROUTES_SEND_REMAINING_MSG_PENDING_RES_QUEUE_FULL"},
	{0x00A3, "ROUTES_RETURN_FILE_HEAP_EXHAUSTED"},
	{0x00A4, "ROUTES_RETURN_FILE_PENDING_RES_QUEUE_FULL"},
	{0x00A5, "ROUTES_PREFLIGHT_RESPONSE_HEAP_EXHAUSTED"},
	{0x00A6, "ROUTES_GET_API_DEBUG_LOG_HEAP_EXHAUSTED"},
	{0x00A7, "ROUTES_GET_API_DEBUG_HEXMEMDUMP_HEAP_EXHAUSTED"},
	{0x00A8, "ROUTES_GET_API_DEBUG_MEMDUMP_HEAP_EXHAUSTED"},
	{0x00A9, "ROUTES_GET_API_DEBUG_MEMINFO_HEAP_EXHAUSTED"},
	{0x00AA, "ROUTES_GET_API_DEBUG_CFG_HEAP_EXHAUSTED"},
	{0x00AB, "ROUTES_POST_API_DEBUG_CFG_HEAP_EXHAUSTED"},
	{0x00AC, "ROUTES_GET_API_ESPBOT_CFG_HEAP_EXHAUSTED"},
	{0x00AD, "ROUTES_POST_API_ESPBOT_CFG_HEAP_EXHAUSTED"},
	{0x00AE, "ROUTES_GET_API_FS_INFO_HEAP_EXHAUSTED"},
	{0x00AF, "ROUTES_GET_API_FILES_LS_HEAP_EXHAUSTED"},
	{0x00B0, "ROUTES_POST_API_GPIO_CFG_HEAP_EXHAUSTED"},
	{0x00B1, "ROUTES_POST_API_GPIO_UNCFG_HEAP_EXHAUSTED"},
	{0x00B2, "ROUTES_GET_API_GPIO_CFG_HEAP_EXHAUSTED"},
	{0x00B3, "ROUTES_GET_API_GPIO_READ_HEAP_EXHAUSTED"},
	{0x00B4, "ROUTES_GET_API_GPIO_SET_HEAP_EXHAUSTED"},
	{0x00B5, "ROUTES_GET_API_OTA_INFO_HEAP_EXHAUSTED"},
	{0x00B6, "ROUTES_GET_API_OTA_CFG_HEAP_EXHAUSTED"},
	{0x00B7, "ROUTES_POST_API_OTA_CFG_HEAP_EXHAUSTED"},
	{0x00B8, "ROUTES_GET_API_WIFI_CFG_HEAP_EXHAUSTED"},
	{0x00B9, "ROUTES_POST_API_WIFI_CFG_HEAP_EXHAUSTED"},
	{0x00BA, "ROUTES_GET_API_WIFI_INFO_HEAP_EXHAUSTED"},
	{0x00BB, "ROUTES_GET_API_DIAG_EVENTS_HEAP_EXHAUSTED"},
	{0x00BC, "ROUTES_GET_API_DIAG_CFG_HEAP_EXHAUSTED"},
	{0x00BD, "ROUTES_POST_API_DIAG_CFG_HEAP_EXHAUSTED"},
	{0x00BE, "ROUTES_GET_SNTP_HEAP_EXHAUSTED"},
	{0x00BF, "ROUTES_POST_API_SNTP_HEAP_EXHAUSTED"},
	{0x00C0, "ROUTES_POST_API_TIMEDATE_HEAP_EXHAUSTED"},
	{0x00C1, "ROUTES_GET_MDNS_HEAP_EXHAUSTED"},
	{0x00C2, "ROUTES_POST_MDNS_HEAP_EXHAUSTED"},
	{0x00C3, "ROUTES_GET_CRON_HEAP_EXHAUSTED"},
	{0x00C4, "ROUTES_POST_CRON_HEAP_EXHAUSTED"},

	{0x00D0, "OTA_INIT_DEFAULT_CFG"},
	{0x00D1, "OTA_SET_PATH_HEAP_EXHAUSTED"},
	{0x00D2, "OTA_SET_CHECK_VERSION_UNKNOWN_VALUE"},
	{0x00D3, "OTA_SET_REBOOT_ON_COMPLETION_UNKNOWN_VALUE"},
	{0x00D4, "OTA_CANNOT_COMPLETE"},
	{0x00D5, "OTA_TIMER_FUNCTION_USERBIN_ID_UNKNOWN"},
	{0x00D6, "OTA_CANNOT_START_UPGRADE"},
	{0x00D7, "OTA_SUCCESSFULLY_COMPLETED"},
	{0x00D8, "OTA_FAILURE"},
	{0x00D9, "OTA_REBOOTING_AFTER_COMPLETION"},
	{0x00DA, "OTA_START_UPGRADE_CALLED_WHILE_OTA_IN_PROGRESS"},
	{0x00DB, "OTA_RESTORE_CFG_FILE_NOT_FOUND"},
	{0x00DC, "OTA_RESTORE_CFG_INCOMPLETE"},
	{0x00DD, "OTA_SAVED_CFG_NOT_UPDATED_INCOMPLETE"},
	{0x00DE, "OTA_SAVE_CFG_FS_NOT_AVAILABLE"},
	{0x00DF, "OTA_SAVE_CFG_CANNOT_OPEN_FILE"},

	{0x00F0, "OTA_SAVE_CFG_HEAP_EXHAUSTED"},
	{0x00F1, "OTA_CHECK_VERSION_UNEXPECTED_WEBCLIENT_STATUS"},
	{0x00F2, "OTA_ASK_VERSION_UNEXPECTED_WEBCLIENT_STATUS"},
	{0x00F3, "OTA_UP_TO_DATE"},
	{0x00F4, "OTA_ENGINE_HEAP_EXHAUSTED"},
	{0x00F5, "OTA_CHECK_VERSION_BAD_FORMAT"},
	{0x00F6, "OTA_CHECK_VERSION_EMPTY_RES"},

	{0x0100, "WEB_CLIENT_SEND_REQ_CANNOT_SEND_REQ"},
	{0x0101, "WEB_CLIENT_ADD_CLIENT_ESPCONN_ASSOCIATION_HEAP_EXHAUSTED"},
	{0x0102, "WEB_CLIENT_ADD_CLIENT_ASSOCIATION_REG_ERROR"},
	{0x0103, "WEB_CLIENT_CONNECT_TIMEOUT"},
	{0x0104, "WEB_CLIENT_SEND_REQ_TIMEOUT"},
	{0x0105, "WEB_CLIENT_RECV_CANNOT_FIND_ESPCONN"},
	{0x0106, "WEB_CLIENT_DISCON_CANNOT_FIND_ESPCONN"},
	{0x0107, "WEB_CLIENT_CONNECTED_CANNOT_FIND_ESPCONN"},
	{0x0108, "WEB_CLIENT_CONNECT_CONN_FAILURE"},
	{0x0109, "WEB_CLIENT_SEND_REQ_HEAP_EXHAUSTED"},

	{0x0110, "SPIFFS_INIT_CANNOT_MOUNT"},
	{0x0111, "SPIFFS_INIT_FS_FORMATTED"},
	{0x0112, "SPIFFS_INIT_CANNOT_FORMAT"},
	{0x0113, "SPIFFS_INIT_FS_MOUNTED"},
	{0x0114, "SPIFFS_INIT_FS_SIZE"},
	{0x0115, "SPIFFS_INIT_FS_USED"},
	{0x0116, "SPIFFS_FORMAT_FS_NOT_INIT"},
	{0x0117, "SPIFFS_FORMAT_FS_FORMATTED"},
	{0x0118, "SPIFFS_FORMAT_CANNOT_FORMAT"},
	{0x0119, "SPIFFS_UNMOUNT_FS_NOT_INIT"},
	{0x011A, "SPIFFS_UNMOUNT_FS_UNMOUNTED"},
	{0x011B, "SPIFFS_LAST_ERROR_FS_NOT_INIT"},
	{0x011C, "SPIFFS_GET_TOTAL_SIZE_FS_NOT_INIT"},
	{0x011D, "SPIFFS_GET_USED_SIZE_FS_NOT_INIT"},
	{0x011E, "SPIFFS_CHECK_FS_NOT_INIT"},
	{0x011F, "SPIFFS_CHECK_SUCCESSFULLY"},
	{0x0120, "SPIFFS_CHECK_ERRORS"},
	{0x0121, "SPIFFS_GET_HANDLER_NOT_INIT"},
	{0x0122, "SPIFFS_FFILE_FS_NOT_AVAILABLE"},
	{0x0123, "SPIFFS_FFILE_FILE_OPEN_ERROR"},
	{0x0124, "SPIFFS_FFILE_NAME_TRUNCATED"},
	{0x0125, "SPIFFS_FFILE_DES_FILE_CLOSE_ERROR"},
	{0x0126, "SPIFFS_GET_NAME_NO_NAME"},
	{0x0127, "SPIFFS_OPEN_FILE_CLOSE_ERROR"},
	{0x0128, "SPIFFS_OPEN_NAME_TRUNCATED"},
	{0x0129, "SPIFFS_OPEN_FILE_OPEN_ERROR"},
	{0x012A, "SPIFFS_OPEN_FS_NOT_AVAILABLE"},
	{0x012B, "SPIFFS_N_READ_FILE_READ_ERROR"},
	{0x012C, "SPIFFS_N_READ_CANNOT_READ"},
	{0x012D, "SPIFFS_N_READ_FS_NOT_AVAILABLE"},
	{0x012E, "SPIFFS_N_READ_FILE_SEEK_ERROR"},
	{0x012F, "SPIFFS_N_APPEND_FILE_WRITE_ERROR"},
	{0x0130, "SPIFFS_N_APPEND_CANNOT_WRITE"},
	{0x0131, "SPIFFS_N_APPEND_FS_NOT_AVAILABLE"},
	{0x0132, "SPIFFS_CLEAR_FILE_CLOSE_ERROR"},
	{0x0133, "SPIFFS_CLEAR_FILE_OPEN_ERROR"},
	{0x0134, "SPIFFS_CLEAR_CANNOT_CLEAR"},
	{0x0135, "SPIFFS_CLEAR_FS_NOT_AVAILABLE"},
	{0x0136, "SPIFFS_REMOVE_FILE_REMOVE_ERROR"},
	{0x0137, "SPIFFS_REMOVE_CANNOT_REMOVE"},
	{0x0138, "SPIFFS_REMOVE_FS_NOT_AVAILABLE"},
	{0x0139, "SPIFFS_FLUSH_FILE_FLUSH_ERROR"},
	{0x013A, "SPIFFS_FLUSH_CANNOT_FLUSH"},
	{0x013B, "SPIFFS_FLUSH_FS_NOT_AVAILABLE"},
	{0x013C, "SPIFFS_EXISTS_FS_NOT_AVAILABLE"},
	{0x013D, "SPIFFS_SIZE_FS_NOT_AVAILABLE"},

	{0x0140, "SPIFFS_FLASH_READ_OUT_OF_BOUNDARY"},
	{0x0141, "SPIFFS_FLASH_READ_ERROR"},
	{0x0142, "SPIFFS_FLASH_READ_TIMEOUT"},
	{0x0143, "SPIFFS_FLASH_WRITE_OUT_OF_BOUNDARY"},
	{0x0144, "SPIFFS_FLASH_WRITE_READ_ERROR"},
	{0x0145, "SPIFFS_FLASH_WRITE_READ_TIMEOUT"},
	{0x0146, "SPIFFS_FLASH_WRITE_WRITE_ERROR"},
	{0x0147, "SPIFFS_FLASH_WRITE_WRITE_TIMEOUT"},
	{0x0148, "SPIFFS_FLASH_ERASE_OUT_OF_BOUNDARY"},
	{0x0149, "SPIFFS_FLASH_ERASE_ERROR"},
	{0x014A, "SPIFFS_FLASH_ERASE_TIMEOUT"},

	{0x0150, "TIMEDATE_RESTORE_CFG_INCOMPLETE"},
	{0x0151, "TIMEDATE_SAVED_CFG_NOT_UPDATED_INCOMPLETE"},
	{0x0152, "TIMEDATE_SAVE_CFG_FS_NOT_AVAILABLE"},
	{0x0153, "TIMEDATE_SAVE_CFG_CANNOT_OPEN_FILE"},
	{0x0154, "TIMEDATE_INIT_DEFAULT_CFG"},
	{0x0155, "TIMEZONE_CHANGED"},
	{0x0156, "TIMEDATE_CHANGED"},

	{0x0160, "MDNS_RESTORE_CFG_INCOMPLETE"},
	{0x0161, "MDNS_SAVED_CFG_NOT_UPDATED_INCOMPLETE"},
	{0x0162, "MDNS_SAVE_CFG_FS_NOT_AVAILABLE"},
	{0x0163, "MDNS_SAVE_CFG_CANNOT_OPEN_FILE"},
	{0x0164, "MDNS_INIT_DEFAULT_CFG"},

	{0x0170, "CRON_RESTORE_CFG_INCOMPLETE"},
	{0x0171, "CRON_SAVED_CFG_NOT_UPDATED_INCOMPLETE"},
	{0x0172, "CRON_SAVE_CFG_FS_NOT_AVAILABLE"},
	{0x0173, "CRON_SAVE_CFG_CANNOT_OPEN_FILE"},
	{0x0174, "CRON_INIT_DEFAULT_CFG"},
	{0x0175, "CRON_START"},
	{0x0176, "CRON_STOP"},
	{0x0177, "CRON_ADD_JOB_CANNOT_COMPLETE"},
	{0x0178, "CRON_ADD_JOB_HEAP_EXHAUSTED"},
	{0x0179, "CRON_ENABLED"},
	{0x017A, "CRON_DISABLED"},

	// drivers / library code space
	{0x0100, "DHT_HEAP_EXHAUSTED"},
	{0x0101, "DHT_READING_TIMEOUT"},
	{0x0102, "DHT_READING_CHECKSUM_ERR"},
	{0x0103, "DHT_READ_HEAP_EXHAUSTED"},
	{0x0104, "MAX6675_THERMOCOUPLE_DISCONNECTED"},
	{0x0105, "MAX6675_HEAP_EXHAUSTED"},
}
