// Package templates contains the templates of the generated files.
//
// Placeholders use the {% key %} syntax of the render package, the
// bindings of every template are listed in its comment.
package templates

// IndexPage is the entry page of the index generator.
//
// Bindings: title
var IndexPage = `
import { useState, useEffect } from 'react';
import { AppConfig, UserSession, showConnect } from '@stacks/connect';
import { StacksMainnet } from '@stacks/network';
import { 
  uintCV, 
  stringAsciiCV,
  principalCV,
  boolCV,
  bufferCV,
  intCV,
  callReadOnlyFunction,
  makeContractCall,
  AnchorMode
} from '@stacks/transactions';

const appConfig = new AppConfig(['store_write', 'publish_data']);
const userSession = new UserSession({ appConfig });

export default function Home() {
  const [mounted, setMounted] = useState(false);
  const [userData, setUserData] = useState<any>(null);
  const [formData, setFormData] = useState<Record<string, string>>({});
  const [result, setResult] = useState('');

  useEffect(() => {
    setMounted(true);
    if (userSession.isSignInPending()) {
      userSession.handlePendingSignIn().then((userData) => {
        setUserData(userData);
      });
    } else if (userSession.isUserSignedIn()) {
      setUserData(userSession.loadUserData());
    }
  }, []);

  const connectWallet = () => {
    showConnect({
      appDetails: {
        name: '{% title %}',
        icon: 'https://stacks.org/logo.png',
      },
      redirectTo: '/',
      onFinish: () => {
        setUserData(userSession.loadUserData());
      },
      userSession,
    });
  };

  const handleInput = (key: string, value: string) => {
    setFormData(prev => ({ ...prev, [key]: value }));
  };

  const callContract = async (functionName: string, args: any[]) => {
    const network = new StacksMainnet();
    const contractAddress = process.env.NEXT_PUBLIC_CONTRACT_ADDRESS!.split('.')[0];
    const contractName = process.env.NEXT_PUBLIC_CONTRACT_ADDRESS!.split('.')[1];

    const txOptions = {
      network,
      anchorMode: AnchorMode.Any,
      contractAddress,
      contractName,
      functionName,
      functionArgs: args,
      senderKey: userData.profile.stxAddress.mainnet,
      validateWithAbi: true,
    };

    try {
      await makeContractCall(txOptions);
      setResult('Transaction submitted successfully');
    } catch (error) {
      setResult('Error: ' + error);
    }
  };

  const queryContract = async (functionName: string, args: any[]) => {
    const network = new StacksMainnet();
    const contractAddress = process.env.NEXT_PUBLIC_CONTRACT_ADDRESS!.split('.')[0];
    const contractName = process.env.NEXT_PUBLIC_CONTRACT_ADDRESS!.split('.')[1];

    try {
      const result = await callReadOnlyFunction({
        network,
        contractAddress,
        contractName,
        functionName,
        functionArgs: args,
        senderAddress: contractAddress,
      });
      setResult(JSON.stringify(result, null, 2));
    } catch (error) {
      setResult('Error: ' + error);
    }
  };

  if (!mounted) return null;

  return (
    <div style={{ padding: '20px', fontFamily: 'Arial, sans-serif', maxWidth: '1200px', margin: '0 auto' }}>
      <h1>{% title %}</h1>
      
      {!userData ? (
        <button onClick={connectWallet} style={{ padding: '10px 20px', fontSize: '16px', cursor: 'pointer', background: '#0066cc', color: 'white', border: 'none', borderRadius: '5px' }}>
          Connect Wallet
        </button>
      ) : (
        <div>
          <p style={{ padding: '10px', background: '#e8f5e9', borderRadius: '5px', marginBottom: '20px' }}>
            Connected: {userData.profile.stxAddress.mainnet}
          </p>
          
          <div style={{ marginTop: '20px', padding: '20px', border: '2px solid #ddd', borderRadius: '8px', background: 'white' }}>
            <h3 style={{ marginTop: 0 }}>Contract Interface</h3>
            <p style={{ color: '#666' }}>Configure NEXT_PUBLIC_CONTRACT_ADDRESS in .env.local file</p>
            
            <div style={{ marginTop: '20px', display: 'flex', gap: '10px', flexWrap: 'wrap' }}>
              <input 
                placeholder="Field 1" 
                value={formData['field1'] || ''} 
                onChange={(e) => handleInput('field1', e.target.value)}
                style={{ padding: '10px', minWidth: '200px', border: '1px solid #ddd', borderRadius: '4px' }}
              />
              <input 
                placeholder="Field 2" 
                value={formData['field2'] || ''} 
                onChange={(e) => handleInput('field2', e.target.value)}
                style={{ padding: '10px', minWidth: '200px', border: '1px solid #ddd', borderRadius: '4px' }}
              />
              <button 
                onClick={() => callContract('sample-function', [])}
                style={{ padding: '10px 20px', cursor: 'pointer', background: '#0066cc', color: 'white', border: 'none', borderRadius: '4px' }}
              >
                Execute
              </button>
            </div>
          </div>

          {result && (
            <div style={{ marginTop: '20px', padding: '15px', border: '2px solid #ddd', borderRadius: '8px', background: '#f8f9fa' }}>
              <h3 style={{ marginTop: 0 }}>Result</h3>
              <pre style={{ whiteSpace: 'pre-wrap', wordBreak: 'break-all', background: 'white', padding: '15px', borderRadius: '4px', border: '1px solid #ddd' }}> {result}</pre>
            </div>
          )}
        </div>
      )}
    </div>
  );
}
`[1:]

// ProjectPage is the entry page of the project generator.
//
// Bindings: title, network, networkClass, writeHandlers, readHandlers,
// writeSections, readSections
var ProjectPage = `
import { useState, useEffect } from 'react';
import { AppConfig, UserSession, showConnect } from '@stacks/connect';
import { {% networkClass %} } from '@stacks/network';
import { callReadOnlyFunction, makeContractCall, AnchorMode } from '@stacks/transactions';

const appConfig = new AppConfig(['store_write', 'publish_data']);
const userSession = new UserSession({ appConfig });
const network = new {% networkClass %}();

function contractId(): [string, string] {
  const [address, name] = (process.env.NEXT_PUBLIC_CONTRACT_ADDRESS || '').split('.');
  return [address, name];
}

export default function Home() {
  const [mounted, setMounted] = useState(false);
  const [userData, setUserData] = useState<any>(null);
  const [result, setResult] = useState('');

  useEffect(() => {
    setMounted(true);
    if (userSession.isSignInPending()) {
      userSession.handlePendingSignIn().then((userData) => {
        setUserData(userData);
      });
    } else if (userSession.isUserSignedIn()) {
      setUserData(userSession.loadUserData());
    }
  }, []);

  const connectWallet = () => {
    showConnect({
      appDetails: {
        name: '{% title %}',
        icon: 'https://stacks.org/logo.png',
      },
      redirectTo: '/',
      onFinish: () => {
        setUserData(userSession.loadUserData());
      },
      userSession,
    });
  };

  const callContract = async (functionName: string, args: any[]) => {
    const [contractAddress, contractName] = contractId();

    try {
      await makeContractCall({
        network,
        anchorMode: AnchorMode.Any,
        contractAddress,
        contractName,
        functionName,
        functionArgs: args,
        senderKey: userData.profile.stxAddress.{% network %},
        validateWithAbi: true,
      });
      setResult(functionName + ': transaction submitted successfully');
    } catch (error) {
      setResult('Error: ' + error);
    }
  };

  const queryContract = async (functionName: string, args: any[]) => {
    const [contractAddress, contractName] = contractId();

    try {
      const result = await callReadOnlyFunction({
        network,
        contractAddress,
        contractName,
        functionName,
        functionArgs: args,
        senderAddress: contractAddress,
      });
      setResult(JSON.stringify(result, null, 2));
    } catch (error) {
      setResult('Error: ' + error);
    }
  };

{% writeHandlers %}
{% readHandlers %}
  if (!mounted) return null;

  return (
    <div style={{ padding: '20px', fontFamily: 'Arial, sans-serif', maxWidth: '1200px', margin: '0 auto' }}>
      <h1>{% title %}</h1>

      {!userData ? (
        <button onClick={connectWallet} style={{ padding: '10px 20px', fontSize: '16px', cursor: 'pointer' }}>
          Connect Wallet
        </button>
      ) : (
        <div>
          <p>Connected: {userData.profile.stxAddress.{% network %}}</p>

          <h2>Transactions</h2>
{% writeSections %}

          <h2>Queries</h2>
{% readSections %}

          {result && (
            <pre style={{ whiteSpace: 'pre-wrap', wordBreak: 'break-all', padding: '15px', border: '1px solid #ddd' }}>{result}</pre>
          )}
        </div>
      )}
    </div>
  );
}
`[1:]

// WriteHandler is a handler of a state-changing operation.
//
// Bindings: handler, operation
var WriteHandler = `
  const {% handler %} = () => callContract('{% operation %}', []);
`[1:]

// ReadHandler is a handler of a read-only operation.
//
// Bindings: handler, operation
var ReadHandler = `
  const {% handler %} = () => queryContract('{% operation %}', []);
`[1:]

// OperationSection is a button of an operation.
//
// Bindings: handler, label
var OperationSection = `
<div style={{ margin: '10px 0' }}>
  <button onClick={{% handler %}}>{% label %}</button>
</div>`[1:]
