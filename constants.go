package csb

// CONVENTION_CSB2 is the convention tag written by the submission builder and
// carried by documents using the flat (V2) metadata layout.
const CONVENTION_CSB2 string = "CSB 2.0"

// CONVENTION_CSB3 is the convention tag carried by documents using the
// trustedNode (V3) metadata layout.
const CONVENTION_CSB3 string = "GeoJSON CSB 3.0"

// CRS_NAME is the coordinate reference system assigned to every submission.
const CRS_NAME string = "EPSG:4326"

// IDTYPE_LOGGER_NAME denotes that a platform's unique identifier is the
// logger-assigned name rather than an IMO or MMSI number.
const IDTYPE_LOGGER_NAME string = "LoggerName"

// PATH_CONVENTION is the gjson path for the convention tag in V2 documents.
const PATH_CONVENTION string = "properties.convention"

// PATH_TRUSTED_NODE is the gjson path for the V3 trustedNode block.
const PATH_TRUSTED_NODE string = "properties.trustedNode"

// PATH_TRUSTED_NODE_CONVENTION is the gjson path for the convention tag in V3 documents.
const PATH_TRUSTED_NODE_CONVENTION string = "properties.trustedNode.convention"

// PATH_TRUSTED_NODE_VESSEL_ID is the gjson path for the unique vessel ID in V3 documents.
const PATH_TRUSTED_NODE_VESSEL_ID string = "properties.trustedNode.uniqueVesselID"

// PATH_PLATFORM_UNIQUE_ID is the gjson path for the unique vessel ID in V2 documents.
const PATH_PLATFORM_UNIQUE_ID string = "properties.platform.uniqueID"
