package registry

// Lifecycle hooks plugins can tap, in the order the bundler fires them.
const (
	HookEnvironment     = "environment"
	HookCompile         = "compile"
	HookThisCompilation = "thisCompilation"
	HookCompilation     = "compilation"
	HookMake            = "make"
	HookProcessAssets   = "processAssets"
	HookEmit            = "emit"
	HookAfterEmit       = "afterEmit"
	HookDone            = "done"
)

// Hooks lists every lifecycle hook in firing order.
var Hooks = []string{
	HookEnvironment,
	HookCompile,
	HookThisCompilation,
	HookCompilation,
	HookMake,
	HookProcessAssets,
	HookEmit,
	HookAfterEmit,
	HookDone,
}

func opts(pairs ...string) []OptionSpec {
	out := make([]OptionSpec, 0, len(pairs)/2)
	for i := 0; i+1 < len(pairs); i += 2 {
		out = append(out, OptionSpec{Name: pairs[i], Type: ValueType(pairs[i+1])})
	}

	return out
}

var builtinLoaders = []Kind{
	{
		Name: "babel-loader",
		Options: opts(
			"presets", "list",
			"plugins", "list",
			"cacheDirectory", "bool|string",
			"cacheIdentifier", "string",
			"cacheCompression", "bool",
			"customize", "string",
			"metadataSubscribers", "list",
			"babelrc", "bool",
			"configFile", "bool|path",
			"envName", "string",
			"sourceMaps", "bool|string",
			"sourceType", "string",
			"compact", "bool|string",
			"targets", "string|list|map",
			"assumptions", "map",
			"only", "list",
			"ignore", "list",
		),
	},
	{
		Name: "ts-loader",
		Options: opts(
			"transpileOnly", "bool",
			"happyPackMode", "bool",
			"configFile", "path",
			"compilerOptions", "map",
			"onlyCompileBundledFiles", "bool",
			"logLevel", "string",
			"silent", "bool",
			"experimentalWatchApi", "bool",
		),
	},
	{
		Name: "css-loader",
		Options: opts(
			"url", "bool|map",
			"import", "bool|map",
			"modules", "bool|string|map",
			"sourceMap", "bool",
			"importLoaders", "number",
			"esModule", "bool",
			"exportType", "string",
		),
	},
	{
		Name: "style-loader",
		Options: opts(
			"injectType", "string",
			"attributes", "map",
			"insert", "string",
			"styleTagTransform", "string",
			"base", "number",
			"esModule", "bool",
		),
	},
	{
		Name: "sass-loader",
		Options: opts(
			"implementation", "string",
			"sassOptions", "map",
			"sourceMap", "bool",
			"additionalData", "string",
			"webpackImporter", "bool",
			"warnRuleAsWarning", "bool",
			"api", "string",
		),
	},
	{
		Name: "postcss-loader",
		Options: opts(
			"execute", "bool",
			"postcssOptions", "map",
			"sourceMap", "bool",
			"implementation", "string",
		),
	},
	{
		Name: "file-loader",
		Options: opts(
			"name", "string",
			"outputPath", "string",
			"publicPath", "string",
			"context", "path",
			"emitFile", "bool",
			"regExp", "string",
			"esModule", "bool",
		),
	},
	{
		Name: "url-loader",
		Options: opts(
			"limit", "number|bool|string",
			"mimetype", "bool|string",
			"encoding", "bool|string",
			"fallback", "string",
			"name", "string",
			"esModule", "bool",
		),
	},
	{
		Name:    "raw-loader",
		Options: opts("esModule", "bool"),
	},
	{
		Name:    "source-map-loader",
		Options: opts("filterSourceMappingUrl", "string"),
	},
}

var builtinPlugins = []Kind{
	{
		Name:    "html-webpack-plugin",
		Aliases: []string{"HtmlWebpackPlugin"},
		Options: opts(
			"title", "string",
			"filename", "string",
			"template", "path",
			"templateContent", "string|bool",
			"templateParameters", "map|bool",
			"inject", "bool|string",
			"publicPath", "string",
			"scriptLoading", "string",
			"favicon", "path",
			"meta", "map",
			"base", "string|map|bool",
			"minify", "bool|map",
			"hash", "bool",
			"cache", "bool",
			"showErrors", "bool",
			"chunks", "list|string",
			"chunksSortMode", "string",
			"excludeChunks", "list",
			"xhtml", "bool",
		),
		Hooks: []string{HookThisCompilation, HookMake, HookProcessAssets},
	},
	{
		Name:    "mini-css-extract-plugin",
		Aliases: []string{"MiniCssExtractPlugin"},
		Options: opts(
			"filename", "string",
			"chunkFilename", "string",
			"ignoreOrder", "bool",
			"insert", "string",
			"attributes", "map",
			"linkType", "string|bool",
			"runtime", "bool",
			"experimentalUseImportModule", "bool",
		),
		Hooks: []string{HookThisCompilation, HookProcessAssets},
	},
	{
		Name:      "define-plugin",
		Aliases:   []string{"DefinePlugin"},
		AnyOption: true,
		Hooks:     []string{HookCompilation},
	},
	{
		Name:      "provide-plugin",
		Aliases:   []string{"ProvidePlugin"},
		AnyOption: true,
		Hooks:     []string{HookCompilation},
	},
	{
		Name:    "copy-webpack-plugin",
		Aliases: []string{"CopyWebpackPlugin"},
		Options: opts(
			"patterns", "list",
			"options", "map",
		),
		Hooks: []string{HookThisCompilation, HookProcessAssets},
	},
	{
		Name:    "clean-webpack-plugin",
		Aliases: []string{"CleanWebpackPlugin"},
		Options: opts(
			"dry", "bool",
			"verbose", "bool",
			"cleanStaleWebpackAssets", "bool",
			"protectWebpackAssets", "bool",
			"cleanOnceBeforeBuildPatterns", "list",
			"cleanAfterEveryBuildPatterns", "list",
			"dangerouslyAllowCleanPatternsOutsideProject", "bool",
		),
		Hooks: []string{HookEmit, HookDone},
	},
}
