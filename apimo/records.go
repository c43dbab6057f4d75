package apimo

import (
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/goliatone/go-apimo/catalog"
	"github.com/goliatone/go-apimo/schema"
)

// Field tables for every record served by the API. Catalog-coded fields name the
// catalog their id resolves against.

var nameIDPairRecord = schema.NewRecord("name_id_pair",
	schema.Int("id"),
	schema.String("name"),
)

var cityRecord = schema.NewRecord("city",
	schema.Int("id"),
	schema.String("name"),
	schema.String("zipcode"),
)

var UserRecord = schema.NewRecord("user",
	schema.Int("id"),
	schema.Int("agency"),
	schema.Bool("active"),
	schema.Time("created_at"),
	schema.Time("updated_at"),
	schema.String("firstname"),
	schema.String("lastname"),
	schema.String("username").Optional(),
	schema.String("password").Optional(),
	schema.String("language"),
	schema.List("spoken_languages", schema.String("")).Optional(),
	schema.Catalog("group", catalog.UserGroup),
	schema.String("email").Check(is.EmailFormat),
	schema.String("phone").Nullable(),
	schema.String("mobile"),
	schema.String("fax").Nullable(),
	schema.Nested("city", nameIDPairRecord).Nullable().Optional(),
	schema.Time("birthday_at").Nullable(),
	schema.String("timezone").Nullable(),
	schema.String("picture").Nullable(),
	schema.List("partners", schema.Raw("")).Optional(),
	schema.List("stories", schema.Raw("")).Optional(),
	schema.Raw("rates"),
)

var agreementRecord = schema.NewRecord("agreement",
	schema.Catalog("type", catalog.PropertyAgreement),
	schema.String("reference"),
	schema.Time("start_at").Coerce().Nullable(),
	schema.Time("end_at").Coerce().Nullable(),
)

var surfaceRecord = schema.NewRecord("surface",
	schema.Catalog("unit", catalog.UnitArea),
	schema.Float("value"),
	schema.Float("total"),
	schema.Float("weighted"),
)

var plotRecord = schema.NewRecord("plot",
	schema.Float("net_floor"),
	schema.Catalog("land_type", catalog.PropertyLand),
	schema.Float("width"),
	schema.Float("height").Optional(),
	schema.Bool("serviced_plot"),
)

var priceRecord = schema.NewRecord("price",
	schema.Float("value"),
	schema.Float("max"),
	schema.Float("fees"),
	schema.Undocumented("unit"),
	schema.Catalog("period", catalog.PropertyPeriod),
	schema.Bool("hide").Coerce(),
	schema.Float("inventory").Strict().Nullable(),
	schema.Float("deposit").Strict().Nullable(),
	schema.String("currency").Lower(),
	schema.Float("commission").Strict().Nullable(),
	schema.Undocumented("transfer_tax"),
	schema.Undocumented("contribution"),
	schema.Undocumented("pension"),
	schema.Float("tenant").Strict().Nullable(),
	schema.Bool("vat").Nullable(),
)

var residenceRecord = schema.NewRecord("residence",
	schema.Int("id"),
	schema.Catalog("type", catalog.PropertyBuilding),
	schema.Float("fees"),
	schema.Catalog("period", catalog.PropertyPeriod),
	schema.Int("lots"),
)

var viewRecord = schema.NewRecord("view",
	schema.Catalog("type", catalog.PropertyViewType),
	schema.List("landscape", schema.Catalog("", catalog.PropertyViewLandscape)),
)

var constructionRecord = schema.NewRecord("construction",
	schema.List("type", schema.Catalog("", catalog.PropertyConstructionMethod)).Optional(),
	schema.Int("construction_year"),
	schema.Int("renovation_year"),
	schema.Float("renovation_cost"),
	schema.Catalog("construction_step", catalog.ConstructionStep),
)

var floorRecord = schema.NewRecord("floor",
	schema.Catalog("type", catalog.PropertyFloor),
	schema.Int("value"),
	schema.Int("levels"),
	schema.Int("floors"),
)

var heatingRecord = schema.NewRecord("heating",
	schema.Catalog("device", catalog.PropertyHeatingDevice),
	schema.List("devices", schema.Catalog("", catalog.PropertyHeatingDevice)).Nullable(),
	schema.Catalog("access", catalog.PropertyHeatingAccess),
	schema.Catalog("type", catalog.PropertyHeatingType),
	schema.List("types", schema.Catalog("", catalog.PropertyHeatingType)).Nullable(),
)

var waterRecord = schema.NewRecord("water",
	schema.Catalog("hot_device", catalog.PropertyHotWaterDevice),
	schema.Catalog("hot_access", catalog.PropertyHotWaterAccess),
	schema.Catalog("waste", catalog.PropertyWasteWater),
)

var styleRecord = schema.NewRecord("style",
	schema.String("name").Nullable(),
)

var CommentRecord = schema.NewRecord("comment",
	schema.String("language"),
	schema.String("title").Optional().Nullable(),
	schema.String("subtitle").Optional().Nullable(),
	schema.Undocumented("hook"),
	schema.String("comment"),
	schema.String("comment_full").Optional().Nullable(),
)

var PictureRecord = schema.NewRecord("picture",
	schema.Int("id"),
	schema.Int("rank"),
	schema.String("url"),
	schema.Int("width_max"),
	schema.Int("height_max"),
	schema.Bool("internet").Coerce(),
	schema.Bool("print").Coerce(),
	schema.Bool("panorama").Coerce(),
	schema.Int("child"),
	schema.Undocumented("reference"),
	schema.List("comments", schema.Nested("", CommentRecord)),
)

var areaFloorRecord = schema.NewRecord("area_floor",
	schema.Catalog("type", catalog.PropertyFloor),
	schema.Int("value"),
)

var areaLotRecord = schema.NewRecord("area_lot",
	schema.Undocumented("type"),
	schema.Undocumented("rank"),
	schema.List("name", schema.Undocumented("").NonNullable()),
)

var AreaRecord = schema.NewRecord("area",
	schema.Catalog("type", catalog.PropertyAreas),
	schema.Int("number"),
	schema.Float("area"),
	schema.Catalog("flooring", catalog.PropertyFlooring),
	schema.Float("ceiling_height").Strict().Nullable(),
	schema.Nested("floor", areaFloorRecord),
	schema.List("orientations", schema.Catalog("", catalog.PropertyOrientation)),
	schema.List("comments", schema.Nested("", CommentRecord)),
	schema.Nested("lot", areaLotRecord),
)

var RegulationRecord = schema.NewRecord("regulation",
	schema.Catalog("type", catalog.PropertyRegulation),
	schema.IntCSV("value"),
	schema.Time("date").Nullable(),
	schema.String("graph").Nullable(),
)

var PropertyRecord = schema.NewRecord("property",
	schema.Int("id"),
	schema.Int("reference").Strict(),
	schema.Int("agency"),
	schema.Undocumented("brand"),
	schema.Undocumented("sector"),
	schema.Nested("user", UserRecord),
	schema.Catalog("step", catalog.PropertyStep).Strict(),
	schema.Catalog("status", catalog.PropertyStatus).Strict(),
	schema.Int("parent").Strict().Nullable(),
	schema.Undocumented("ranking"),
	schema.Catalog("category", catalog.PropertyCategory),
	schema.String("name").Nullable(),
	schema.Catalog("type", catalog.PropertyType),
	schema.Catalog("subtype", catalog.PropertySubtype),
	schema.Nested("agreement", agreementRecord).Nullable(),
	schema.String("block_name").Nullable(),
	schema.String("lot_reference").Nullable(),
	schema.String("cadastre_reference").Nullable(),
	schema.String("stairs_reference").Nullable(),
	schema.String("address").Nullable(),
	schema.String("address_more").Nullable(),
	schema.Bool("publish_address").Coerce(),
	schema.String("country").Lower(),
	schema.Nested("region", nameIDPairRecord),
	schema.Nested("city", cityRecord),
	schema.Undocumented("original_city"),
	schema.Nested("district", nameIDPairRecord).Nullable(),
	schema.Undocumented("original_district"),
	schema.Undocumented("location"),
	schema.Float("longitude"),
	schema.Float("latitude"),
	schema.Float("radius"),
	schema.Float("altitude"),
	schema.Undocumented("referral"),
	schema.Undocumented("subreferral"),
	schema.Nested("area", surfaceRecord),
	schema.Nested("plot", plotRecord),
	schema.Int("rooms"),
	schema.Int("bedrooms"),
	schema.Int("sleeps"),
	schema.Nested("price", priceRecord),
	schema.List("rates", schema.Raw("")),
	schema.Undocumented("owner"),
	schema.Undocumented("visit"),
	schema.Nested("residence", residenceRecord).Nullable(),
	schema.Nested("view", viewRecord).Nullable(),
	schema.Nested("construction", constructionRecord),
	schema.Nested("floor", floorRecord),
	schema.Nested("heating", heatingRecord),
	schema.Nested("water", waterRecord),
	schema.Catalog("condition", catalog.PropertyCondition),
	schema.Catalog("standing", catalog.PropertyStanding),
	schema.Nested("style", styleRecord),
	schema.Int("twinned").Nullable(),
	schema.Int("facades"),
	schema.Float("length").Nullable(),
	schema.Float("height").Nullable(),
	schema.String("url").Nullable(),
	schema.Catalog("availability", catalog.PropertyAvailability),
	schema.Undocumented("available_at"),
	schema.Time("delivered_at").Nullable(),
	schema.List("activities", schema.Catalog("", catalog.PropertyActivity)),
	schema.List("orientations", schema.Catalog("", catalog.PropertyOrientation)),
	schema.List("services", schema.Catalog("", catalog.PropertyService)),
	schema.List("proximities", schema.Catalog("", catalog.PropertyProximity)),
	schema.List("tags", schema.Catalog("", catalog.Tags)),
	schema.List("tags_customized", schema.Raw("")),
	schema.List("pictures", schema.Nested("", PictureRecord)),
	schema.List("medias", schema.Raw("")),
	schema.List("documents", schema.Raw("")),
	schema.List("comments", schema.Nested("", CommentRecord)),
	schema.List("areas", schema.Nested("", AreaRecord)),
	schema.List("regulations", schema.Nested("", RegulationRecord)),
	schema.List("financial", schema.Raw("")),
	schema.List("exchanges", schema.Raw("")),
	schema.List("options", schema.Raw("")),
	schema.Undocumented("filling_rate"),
	schema.Undocumented("private_comment"),
	schema.Undocumented("interagency_comment"),
	schema.Undocumented("status_comment"),
	schema.List("logs", schema.Raw("")),
	schema.List("referrals", schema.Raw("")),
	schema.Time("created_at"),
	schema.Time("updated_at"),
	schema.Int("created_by"),
	schema.Int("updated_by"),
)

var rateRecord = schema.NewRecord("rate",
	schema.Int("id"),
	schema.Catalog("category", catalog.PropertyCategory),
	schema.Float("range_min").Nullable(),
	schema.Float("range_max").Nullable(),
	schema.Float("commission_price").Nullable(),
	schema.Float("commission_rate").Nullable(),
	schema.String("comment"),
	schema.String("url").Nullable(),
)

var partnerRecord = schema.NewRecord("partner",
	schema.Int("type"),
	schema.Int("partner").Nullable(),
	schema.String("name").Nullable(),
	schema.String("reference"),
	schema.Float("amount"),
	schema.String("currency").Lower(),
)

var AgencyRecord = schema.NewRecord("agency",
	schema.Int("id"),
	schema.Int("reference"),
	schema.Bool("active"),
	schema.String("name"),
	schema.Nested("company", nameIDPairRecord),
	schema.Raw("brand"),
	schema.List("networks", schema.Raw("")),
	schema.String("address"),
	schema.String("address_more").Nullable(),
	schema.Nested("city", cityRecord),
	schema.Raw("district"),
	schema.String("country").Lower(),
	schema.String("region").Lower(),
	schema.Float("latitude"),
	schema.Float("longitude"),
	schema.String("email").Check(is.EmailFormat),
	schema.String("phone"),
	schema.String("fax").Nullable(),
	schema.String("url"),
	schema.String("logo").Check(is.URL),
	schema.String("logo_svg").Nullable(),
	schema.String("picture").Check(is.URL),
	schema.String("currency").Lower(),
	schema.String("timetable"),
	schema.Time("created_at"),
	schema.Time("updated_at"),
	schema.URL("providers", "agencies"),
	schema.List("rates", schema.Nested("", rateRecord)),
	schema.List("partners", schema.Nested("", partnerRecord)),
	schema.List("stories", schema.Raw("")),
	schema.List("users", schema.Nested("", UserRecord)),
	schema.List("sectors", schema.Raw("")),
	schema.URL("parameters", "agencies"),
	schema.String("subscription"),
)

var agenciesPageRecord = schema.NewRecord("agencies",
	schema.Int("total_items").Strict(),
	schema.List("agencies", schema.Nested("", AgencyRecord)),
	schema.Int("timestamp").Strict(),
)

var propertiesPageRecord = schema.NewRecord("properties",
	schema.Int("total_items").Strict(),
	schema.Int("timestamp").Strict(),
	schema.List("properties", schema.Nested("", PropertyRecord)),
)
