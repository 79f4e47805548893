package templates

// NextConfig is next.config.js of a project.
var NextConfig = `
module.exports = {
  reactStrictMode: true,
}
`[1:]

// GitIgnore is .gitignore of a project.
var GitIgnore = `
.next
node_modules
.env
.env.local
.env.production
.env.development
out
dist
build
`[1:]

// EnvLocal is .env.local of a project, the address is
// filled in by hand after deployment.
//
// Bindings: network
var EnvLocal = `
NEXT_PUBLIC_CONTRACT_ADDRESS=
NEXT_PUBLIC_NETWORK={% network %}
`[1:]

// Launcher runs the batch-call script of a contract.
//
// Bindings: envPath, identifier, runner, source
var Launcher = `
echo "Loading environment variables from {% envPath %} ..."
source {% envPath %}

echo "Running the script of the {% identifier %}.clar ..."
{% runner %} {% source %}
`[1:]

// EnvFile is the environment of a batch-call script.
//
// Bindings: network, deployer, user, senderPrivateKey, addressKey, identifier
var EnvFile = `
STACKS_NETWORK={% network %}
DEPLOYER="{% deployer %}"
USER_1="{% user %}"
SENDER_PRIVATE_KEY="{% senderPrivateKey %}"
{% addressKey %}={% deployer %}.{% identifier %}
`[1:]
