package catalog

// Name identifies one reference table served by the catalogs endpoint.
type Name string

const (
	BookStep                   Name = "book_step"
	ConstructionStep           Name = "construction_step"
	PropertyActivity           Name = "property_activity"
	PropertyAgreement          Name = "property_agreement"
	PropertyAreas              Name = "property_areas"
	PropertyAvailability       Name = "property_availability"
	PropertyBuilding           Name = "property_building"
	PropertyCategory           Name = "property_category"
	PropertyCondition          Name = "property_condition"
	PropertyConstructionMethod Name = "property_construction_method"
	PropertyFloor              Name = "property_floor"
	PropertyFlooring           Name = "property_flooring"
	PropertyHeatingAccess      Name = "property_heating_access"
	PropertyHeatingDevice      Name = "property_heating_device"
	PropertyHeatingType        Name = "property_heating_type"
	PropertyHotWaterAccess     Name = "property_hot_water_access"
	PropertyHotWaterDevice     Name = "property_hot_water_device"
	PropertyLand               Name = "property_land"
	PropertyOrientation        Name = "property_orientation"
	PropertyPeriod             Name = "property_period"
	PropertyProximity          Name = "property_proximity"
	PropertyRegulation         Name = "property_regulation"
	PropertyService            Name = "property_service"
	PropertyStanding           Name = "property_standing"
	PropertyStatus             Name = "property_status"
	PropertyStep               Name = "property_step"
	PropertySubcategory        Name = "property_subcategory"
	PropertySubtype            Name = "property_subtype"
	PropertyType               Name = "property_type"
	PropertyViewLandscape      Name = "property_view_landscape"
	PropertyViewType           Name = "property_view_type"
	PropertyWasteWater         Name = "property_waste_water"
	Tags                       Name = "tags"
	UnitArea                   Name = "unit_area"
	UserGroup                  Name = "user_group"
)

var knownNames = map[Name]struct{}{
	BookStep: {}, ConstructionStep: {}, PropertyActivity: {}, PropertyAgreement: {},
	PropertyAreas: {}, PropertyAvailability: {}, PropertyBuilding: {}, PropertyCategory: {},
	PropertyCondition: {}, PropertyConstructionMethod: {}, PropertyFloor: {}, PropertyFlooring: {},
	PropertyHeatingAccess: {}, PropertyHeatingDevice: {}, PropertyHeatingType: {},
	PropertyHotWaterAccess: {}, PropertyHotWaterDevice: {}, PropertyLand: {},
	PropertyOrientation: {}, PropertyPeriod: {}, PropertyProximity: {}, PropertyRegulation: {},
	PropertyService: {}, PropertyStanding: {}, PropertyStatus: {}, PropertyStep: {},
	PropertySubcategory: {}, PropertySubtype: {}, PropertyType: {}, PropertyViewLandscape: {},
	PropertyViewType: {}, PropertyWasteWater: {}, Tags: {}, UnitArea: {}, UserGroup: {},
}

// Valid reports whether n belongs to the known set of catalogs.
func (n Name) Valid() bool {
	_, ok := knownNames[n]
	return ok
}

func (n Name) String() string { return string(n) }
