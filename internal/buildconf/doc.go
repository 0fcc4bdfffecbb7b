// Package buildconf provides the declarative build configuration schema,
// YAML and JSONC parsing, and multi-file merging.
//
// The configuration mirrors the shape of a webpack configuration:
//
//	context: /srv/app
//	entry: ./src/main/js/app.js
//	mode: development
//	devtool: source-map
//	cache: true
//	output:
//	  path: src/main/resources/static/built
//	  filename: bundle.js
//	resolve:
//	  alias:
//	    stompjs: ./node_modules/stompjs/lib/stomp.js
//	module:
//	  rules:
//	    - test: \.js$
//	      exclude: node_modules
//	      use:
//	        - loader: babel-loader
//	          options:
//	            presets: ["@babel/preset-env", "@babel/preset-react"]
//	plugins:
//	  - name: html-webpack-plugin
//	    options:
//	      template: ./src/main/resources/templates/index.html
//	      filename: index.html
//
// # Shorthands
//
//   - use: babel-loader                      (single loader, no options)
//   - use: [style-loader, {loader: css-loader, options: {...}}]
//   - loader: babel-loader + options: {...}  (directly on the rule)
//   - plugins: [define-plugin]               (plugin without options)
//   - test / exclude / include accept a string or a list
//
// # Merging
//
// LoadFiles reads several files and merges them in order before decoding:
// mappings merge recursively, sequences are concatenated and scalars from
// later files win. This is how a shared base file is combined with a
// per-mode overlay.
//
// Loading is the only part of the pipeline that touches the filesystem.
// The decoded BuildConfig is treated as immutable by the resolver.
package buildconf
